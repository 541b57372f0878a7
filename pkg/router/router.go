package router

import (
	"context"
	"net/http"

	"github.com/wellnest-app/backend/pkg/errorx"
	"github.com/wellnest-app/backend/pkg/xcontext"
)

type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc runs before the handler. It returns a derived context which
// the handler will receive; returning an error short-circuits the request.
type MiddlewareFunc func(ctx context.Context, r *http.Request) (context.Context, error)

// CloserFunc runs after the handler regardless of its result.
type CloserFunc func(ctx context.Context, r *http.Request, err error)

type Router struct {
	mux     *http.ServeMux
	baseCtx context.Context
	befores []MiddlewareFunc
	closers []CloserFunc
}

// New creates a router. The given context must carry the database, configs,
// and logger; every request is served under a context derived from it.
func New(ctx context.Context) *Router {
	return &Router{mux: http.NewServeMux(), baseCtx: ctx}
}

// Branch returns a router sharing the same mux but with an independent
// middleware chain.
func (r *Router) Branch() *Router {
	branch := &Router{mux: r.mux, baseCtx: r.baseCtx}
	branch.befores = append(branch.befores, r.befores...)
	branch.closers = append(branch.closers, r.closers...)
	return branch
}

func (r *Router) Before(middleware MiddlewareFunc) {
	r.befores = append(r.befores, middleware)
}

func (r *Router) AddCloser(closer CloserFunc) {
	r.closers = append(r.closers, closer)
}

func (r *Router) Handler() http.Handler {
	return r.mux
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	register(r, http.MethodGet, pattern, handler)
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	register(r, http.MethodPost, pattern, handler)
}

func register[Request, Response any](
	r *Router, method, pattern string, handler HandlerFunc[Request, Response],
) {
	closers := r.closers
	befores := r.befores

	r.mux.HandleFunc(pattern, func(w http.ResponseWriter, req *http.Request) {
		ctx := r.baseCtx

		err := func() error {
			if req.Method != method {
				return errorx.New(errorx.BadRequest, "Method %s is not allowed", req.Method)
			}

			for _, middleware := range befores {
				next, err := middleware(ctx, req)
				if err != nil {
					return err
				}

				ctx = next
			}

			var handlerReq Request
			if err := bindRequest(req, &handlerReq); err != nil {
				xcontext.Logger(ctx).Debugf("Cannot bind request: %v", err)
				return errorx.New(errorx.BadRequest, "Cannot bind the request")
			}

			resp, err := handler(ctx, &handlerReq)
			if err != nil {
				return err
			}

			return writeJSON(w, newResponse(resp))
		}()

		if err != nil {
			if werr := writeJSON(w, newErrorResponse(err)); werr != nil {
				xcontext.Logger(ctx).Errorf("Cannot write the response: %v", werr)
			}
		}

		for _, closer := range closers {
			closer(ctx, req, err)
		}
	})
}
