package middleware

import "github.com/danielgtaylor/huma/v2"

// Container accumulates per-resource middleware stacks while the routes are
// wired, so each handler gets its own ordered copy.
type Container struct {
	middlewares huma.Middlewares
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Add(mw func(huma.Context, func(huma.Context))) {
	c.middlewares = append(c.middlewares, mw)
}

// GetAllAndClear hands the accumulated stack over and resets the container
// for the next resource.
func (c *Container) GetAllAndClear() huma.Middlewares {
	mws := c.middlewares
	c.middlewares = nil
	return mws
}
