package adapter

import "context"

type Core interface {
	Closer
	Run(ctx context.Context) error
	GetProblem(tag string) Problem
	GetProblems() []Problem
}
