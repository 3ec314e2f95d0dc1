package core

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/logrusorgru/aurora/v4"
	"github.com/rnetx/judge/adapter"
	"github.com/rnetx/judge/api"
	"github.com/rnetx/judge/cache"
	"github.com/rnetx/judge/log"
	"github.com/rnetx/judge/problem"
	"github.com/rnetx/judge/problem/builtin"
	"github.com/rnetx/judge/utils"
)

func init() {
	builtin.Do()
}

var _ adapter.Core = (*Core)(nil)

type Core struct {
	ctx         context.Context
	rootLogger  log.Logger
	coreLogger  log.Logger
	broadcast   *log.BroadcastLogger
	closeOutput io.Closer

	problems   []adapter.Problem
	problemMap map[string]adapter.Problem
	cache      adapter.Cache
	apiServer  *api.APIServer
}

func newRootLogger(options LogOptions) (log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(options.Level)
	if err != nil {
		return nil, nil, err
	}
	var (
		logOutput io.Writer
		closer    io.Closer
	)
	switch options.Output {
	case "stderr", "Stderr", "":
		logOutput = os.Stderr
	case "stdout", "Stdout":
		logOutput = os.Stdout
	default:
		options.DisableColor = true
		f, err := os.OpenFile(options.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file failed: %s", err)
		}
		logOutput = f
		closer = f
	}
	return log.NewSimpleLogger(logOutput, level, options.DisableTimestamp, options.DisableColor), closer, nil
}

func NewCore(ctx context.Context, options Options) (*Core, log.Logger, error) {
	rootLogger, closeOutput, err := newRootLogger(options.Log)
	if err != nil {
		return nil, nil, err
	}
	c := &Core{
		ctx:         ctx,
		closeOutput: closeOutput,
	}
	if options.API != nil {
		c.broadcast = log.NewBroadcastLogger(rootLogger)
		rootLogger = c.broadcast
	}
	c.rootLogger = rootLogger
	c.coreLogger = log.NewTagLogger(rootLogger, "core", aurora.RedFg)
	err = c.newProblems(options.Problems)
	if err != nil {
		c.Close()
		return nil, nil, err
	}
	if options.Cache != nil {
		cacheLogger := log.NewTagLogger(c.rootLogger, "cache", aurora.BlueFg)
		c.cache, err = cache.NewCache(ctx, cacheLogger, *options.Cache)
		if err != nil {
			c.Close()
			return nil, nil, fmt.Errorf("create cache failed: %s", err)
		}
	}
	if options.API != nil {
		apiLogger := log.NewTagLogger(c.rootLogger, "api", aurora.YellowFg)
		c.apiServer, err = api.NewAPIServer(ctx, c, apiLogger, c.broadcast, c.cache, *options.API)
		if err != nil {
			c.Close()
			return nil, nil, fmt.Errorf("create api server failed: %s", err)
		}
	}
	return c, c.coreLogger, nil
}

func (c *Core) newProblems(optionsList []problem.Options) error {
	if len(optionsList) == 0 {
		for _, _type := range problem.ProblemTypes() {
			optionsList = append(optionsList, problem.Options{Tag: _type, Type: _type})
		}
	}
	c.problems = make([]adapter.Problem, 0, len(optionsList))
	c.problemMap = make(map[string]adapter.Problem, len(optionsList))
	for i, problemOptions := range optionsList {
		tag := problemOptions.Tag
		if tag == "" {
			return fmt.Errorf("create problem[%d] failed: missing problem tag", i)
		}
		_, ok := c.problemMap[tag]
		if ok {
			return fmt.Errorf("create problem[%d] failed: duplicate problem tag: %s", i, tag)
		}
		problemLogger := log.NewTagLogger(c.rootLogger, fmt.Sprintf("problem/%s", tag), aurora.GreenFg)
		p, err := problem.NewProblem(c.ctx, problemLogger, tag, problemOptions.Type, problemOptions.Args)
		if err != nil {
			return fmt.Errorf("create problem[%d] failed: %w", i, err)
		}
		c.problems = append(c.problems, p)
		c.problemMap[tag] = p
		for _, alias := range problemOptions.Aliases {
			_, ok := c.problemMap[alias]
			if ok {
				return fmt.Errorf("create problem[%d] failed: duplicate problem tag: %s", i, alias)
			}
			c.problemMap[alias] = p
		}
	}
	return nil
}

func (c *Core) GetProblem(tag string) adapter.Problem {
	return c.problemMap[tag]
}

func (c *Core) GetProblems() []adapter.Problem {
	return c.problems
}

func (c *Core) RootLogger() log.Logger {
	return c.rootLogger
}

func (c *Core) Close() error {
	if c.broadcast != nil {
		c.broadcast.Close()
	}
	if c.closeOutput != nil {
		return c.closeOutput.Close()
	}
	return nil
}

// Run starts the cache and the api server, blocks until ctx is done, then
// closes what was started in reverse order.
func (c *Core) Run(ctx context.Context) error {
	if c.apiServer == nil {
		return fmt.Errorf("missing api options")
	}
	c.coreLogger.Info("core is starting...")
	defer c.coreLogger.Info("core is stopped")
	t := time.Now()
	type service struct {
		name string
		v    any
	}
	started := utils.NewStack[service](2)
	defer func() {
		for started.Len() > 0 {
			s, _ := started.Pop()
			err := adapter.Close(s.v)
			if err != nil {
				c.coreLogger.Errorf("close %s failed: %s", s.name, err)
			} else {
				c.coreLogger.Infof("close %s success", s.name)
			}
		}
	}()
	if c.cache != nil {
		err := adapter.Start(c.cache)
		if err != nil {
			err = fmt.Errorf("start cache[%s] failed: %s", c.cache.Type(), err)
			c.coreLogger.Fatal(err)
			return err
		}
		started.Push(service{name: fmt.Sprintf("cache[%s]", c.cache.Type()), v: c.cache})
	}
	err := c.apiServer.Start()
	if err != nil {
		err = fmt.Errorf("start api server failed: %s", err)
		c.coreLogger.Fatal(err)
		return err
	}
	started.Push(service{name: "api server", v: c.apiServer})
	c.coreLogger.Infof("core start success, cost: %s", time.Since(t))
	<-ctx.Done()
	return nil
}
