// Package pac evaluates PAC documents with the goja JavaScript runtime.
package pac

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dop251/goja"
	"go.trai.ch/pactester/internal/core/domain"
	"go.trai.ch/pactester/internal/core/ports"
	"go.trai.ch/zerr"
)

const entryPoint = "FindProxyForURL"

// Evaluator implements ports.Evaluator.
type Evaluator struct {
	hosts  ports.HostResolver
	logger ports.Logger
	now    func() time.Time
}

// NewEvaluator creates an Evaluator. hosts backs the DNS helpers.
func NewEvaluator(hosts ports.HostResolver, logger ports.Logger) *Evaluator {
	return &Evaluator{hosts: hosts, logger: logger, now: time.Now}
}

// Compile loads the PAC document at path and returns a finder bound to it.
func (e *Evaluator) Compile(path string) (ports.ProxyFinder, error) {
	//nolint:gosec // Path comes from the content cache
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, evaluationError(zerr.Wrap(err, "failed to read PAC document"), path)
	}

	s := &Script{
		vm:     goja.New(),
		hosts:  e.hosts,
		logger: e.logger,
		now:    e.now,
		ctx:    context.Background(),
	}
	if err := s.bindHelpers(); err != nil {
		return nil, evaluationError(err, path)
	}

	if _, err := s.vm.RunScript(path, string(src)); err != nil {
		return nil, evaluationError(err, path)
	}

	fn, ok := goja.AssertFunction(s.vm.Get(entryPoint))
	if !ok {
		return nil, evaluationError(zerr.New(entryPoint+" is not defined"), path)
	}
	s.find = fn

	e.logger.Debug(fmt.Sprintf("Compiled PAC document '%s'.", path))
	return s, nil
}

// Script is a compiled PAC document. It is not safe for concurrent use.
type Script struct {
	vm     *goja.Runtime
	find   goja.Callable
	hosts  ports.HostResolver
	logger ports.Logger
	now    func() time.Time

	// ctx is the context of the call in progress, used by DNS helpers.
	ctx context.Context
}

// FindProxyForURL runs the document's entry point. Cancelling ctx interrupts the script.
func (s *Script) FindProxyForURL(ctx context.Context, url, host string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", zerr.Wrap(err, "evaluation canceled")
	}

	s.ctx = ctx
	defer func() { s.ctx = context.Background() }()

	stop := context.AfterFunc(ctx, func() { s.vm.Interrupt(ctx.Err()) })
	defer func() {
		stop()
		s.vm.ClearInterrupt()
	}()

	res, err := s.find(goja.Undefined(), s.vm.ToValue(url), s.vm.ToValue(host))
	if err != nil {
		var interrupted *goja.InterruptedError
		if errors.As(err, &interrupted) {
			return "", zerr.Wrap(ctx.Err(), "evaluation canceled")
		}
		return "", zerr.With(evaluationError(err, ""), "url", url)
	}

	if res == nil || goja.IsUndefined(res) || goja.IsNull(res) {
		return "", zerr.With(evaluationError(zerr.New(entryPoint+" returned no value"), ""), "url", url)
	}

	return res.String(), nil
}

func evaluationError(err error, path string) error {
	err = zerr.Wrap(err, domain.ErrEvaluationFailed.Error())
	if path != "" {
		err = zerr.With(err, "path", path)
	}
	return domain.NewError(domain.KindEvaluation, err)
}
