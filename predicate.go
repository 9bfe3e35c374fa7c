package pm

import (
	"fmt"
	"time"
)

// PredicateContext carries the inputs an expression sees when it is
// evaluated against one candidate (a suspending actor, or a user's state).
type PredicateContext struct {
	// Actor is the suspending-actor identifier under test, when relevant.
	Actor string
	// UserID is the device user the candidate belongs to.
	UserID int
	// State holds the flattened user-state snapshot fields, when relevant.
	State map[string]any
	// Now pins the evaluation timestamp; defaulted when nil.
	Now *time.Time
	// Args and Metadata are caller-supplied expression inputs.
	Args     map[string]any
	Metadata map[string]any
}

func (ctx PredicateContext) withDefaultNow() PredicateContext {
	if ctx.Now != nil {
		return ctx
	}
	now := time.Now()
	ctx.Now = &now
	return ctx
}

func (ctx PredicateContext) timestamp() time.Time {
	ctx = ctx.withDefaultNow()
	return *ctx.Now
}

func (ctx PredicateContext) withDefaultMaps() PredicateContext {
	if ctx.Args == nil {
		ctx.Args = map[string]any{}
	}
	if ctx.Metadata == nil {
		ctx.Metadata = map[string]any{}
	}
	return ctx
}

// baseEnvironment returns the bindings shared by every evaluator engine.
func (ctx PredicateContext) baseEnvironment() map[string]any {
	env := map[string]any{
		"actor":    ctx.Actor,
		"user_id":  ctx.UserID,
		"now":      ctx.timestamp(),
		"args":     ctx.Args,
		"metadata": ctx.Metadata,
	}
	for key, value := range ctx.State {
		env[key] = value
	}
	return env
}

// Evaluator executes predicate expressions against a context.
type Evaluator interface {
	Evaluate(ctx PredicateContext, expr string) (any, error)
	Compile(expr string, opts ...CompileOption) (CompiledPredicate, error)
}

// CompiledPredicate is a reusable expression program.
type CompiledPredicate interface {
	Evaluate(ctx PredicateContext) (any, error)
}

// CompileOption configures evaluator compile behaviour.
type CompileOption interface {
	applyCompileOption(*compileConfig)
}

type compileConfig struct{}

type compileOptionFunc func(*compileConfig)

func (f compileOptionFunc) applyCompileOption(cfg *compileConfig) {
	if f != nil {
		f(cfg)
	}
}

// ActorPredicate matches suspending-actor identifiers; the closure form
// consumed by RemoveSuspensionsWhere.
type ActorPredicate func(actor string) bool

// UserPredicate matches per-user state records; the closure form consumed
// by UserIDsWhere.
type UserPredicate func(userID int, state *UserState) bool

// PredicateOption configures expression-compiled predicates.
type PredicateOption func(*predicateConfig)

type predicateConfig struct {
	logger   EvaluatorLogger
	args     map[string]any
	metadata map[string]any
}

// WithPredicateLogger routes evaluation attempts (and failures) to logger.
func WithPredicateLogger(logger EvaluatorLogger) PredicateOption {
	return func(cfg *predicateConfig) {
		cfg.logger = logger
	}
}

// WithPredicateArgs binds args into the expression environment.
func WithPredicateArgs(args map[string]any) PredicateOption {
	return func(cfg *predicateConfig) {
		cfg.args = args
	}
}

// WithPredicateMetadata binds metadata into the expression environment.
func WithPredicateMetadata(metadata map[string]any) PredicateOption {
	return func(cfg *predicateConfig) {
		cfg.metadata = metadata
	}
}

func applyPredicateOptions(opts []PredicateOption) predicateConfig {
	cfg := predicateConfig{logger: noopEvaluatorLogger{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// CompileActorPredicate compiles expr into an actor predicate. The
// expression sees `actor`, `user_id`, `now`, `args`, and `metadata`.
// Evaluation failures and non-boolean results make the predicate false, so
// predicates stay total; failures are reported through the configured logger.
func CompileActorPredicate(evaluator Evaluator, expr string, opts ...PredicateOption) (ActorPredicate, error) {
	cfg := applyPredicateOptions(opts)
	compiled, err := evaluator.Compile(expr)
	if err != nil {
		return nil, err
	}
	engine := evaluatorEngineName(evaluator)
	return func(actor string) bool {
		ctx := PredicateContext{
			Actor:    actor,
			Args:     cfg.args,
			Metadata: cfg.metadata,
		}.withDefaultNow().withDefaultMaps()
		return runPredicate(compiled, ctx, engine, expr, cfg.logger)
	}, nil
}

// CompileUserPredicate compiles expr into a user-state predicate. The
// expression sees the flattened state snapshot (installed, hidden,
// suspended, stopped, not_launched, instant_app, virtual_preload, enabled,
// distraction_flags, install_reason, uninstall_reason, suspending_actors,
// harmful_app_warning) plus `user_id`, `now`, `args`, and `metadata`.
func CompileUserPredicate(evaluator Evaluator, expr string, opts ...PredicateOption) (UserPredicate, error) {
	cfg := applyPredicateOptions(opts)
	compiled, err := evaluator.Compile(expr)
	if err != nil {
		return nil, err
	}
	engine := evaluatorEngineName(evaluator)
	return func(userID int, state *UserState) bool {
		ctx := PredicateContext{
			UserID:   userID,
			State:    userStateBinding(state),
			Args:     cfg.args,
			Metadata: cfg.metadata,
		}.withDefaultNow().withDefaultMaps()
		return runPredicate(compiled, ctx, engine, expr, cfg.logger)
	}, nil
}

func runPredicate(compiled CompiledPredicate, ctx PredicateContext, engine, expr string, logger EvaluatorLogger) bool {
	start := time.Now()
	value, err := compiled.Evaluate(ctx)
	matched := false
	if err == nil {
		matched, err = coerceBool(value)
	}
	logger.LogEvaluation(EvaluatorLogEvent{
		Engine:   engine,
		Expr:     expr,
		UserID:   ctx.UserID,
		Actor:    ctx.Actor,
		Duration: time.Since(start),
		Err:      wrapEvaluationError(engine, expr, ctx.Actor, err),
	})
	return err == nil && matched
}

func coerceBool(value any) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case nil:
		return false, nil
	default:
		return false, fmt.Errorf("predicate returned %T, want bool", value)
	}
}

// userStateBinding flattens a user-state record into expression bindings.
func userStateBinding(state *UserState) map[string]any {
	if state == nil {
		return map[string]any{}
	}
	return map[string]any{
		"installed":           state.Installed,
		"stopped":             state.Stopped,
		"not_launched":        state.NotLaunched,
		"hidden":              state.Hidden,
		"instant_app":         state.InstantApp,
		"virtual_preload":     state.VirtualPreload,
		"suspended":           state.Suspended,
		"enabled":             int(state.Enabled),
		"distraction_flags":   state.DistractionFlags,
		"install_reason":      int(state.InstallReason),
		"uninstall_reason":    int(state.UninstallReason),
		"suspending_actors":   state.SuspendingActors(),
		"harmful_app_warning": state.HarmfulAppWarning,
	}
}

func evaluatorEngineName(e Evaluator) string {
	if e == nil {
		return "unknown"
	}
	switch fmt.Sprintf("%T", e) {
	case "*pm.exprEvaluator":
		return "expr"
	case "*pm.celEvaluator":
		return "cel"
	case "*pm.jsEvaluator":
		return "js"
	default:
		return "custom"
	}
}
