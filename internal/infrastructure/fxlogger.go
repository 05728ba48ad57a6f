package infrastructure

import (
	"fmt"

	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// FxLogger routes Fx's own events into zap. Routine
// container events are logged at debug so command output stays clean; failures
// are logged at error.
type FxLogger struct {
	logger *zap.Logger
}

// NewFxLoggerAdapter returns an fxevent.Logger backed by logger.
func NewFxLoggerAdapter(logger *zap.Logger) fxevent.Logger {
	return &FxLogger{logger: logger.Named("fx")}
}

// LogEvent implements fxevent.Logger.
func (l *FxLogger) LogEvent(event fxevent.Event) {
	switch e := event.(type) {
	case *fxevent.OnStartExecuted:
		l.hook("OnStart", e.CallerName, e.FunctionName, e.Runtime.String(), e.Err)
	case *fxevent.OnStopExecuted:
		l.hook("OnStop", e.CallerName, e.FunctionName, e.Runtime.String(), e.Err)
	case *fxevent.Supplied:
		l.result("supplied", e.Err, zap.String("type", e.TypeName), zap.String("module", e.ModuleName))
	case *fxevent.Provided:
		l.result("provided", e.Err, zap.Strings("types", e.OutputTypeNames), zap.String("module", e.ModuleName))
	case *fxevent.Invoked:
		l.result("invoked", e.Err, zap.String("function", e.FunctionName), zap.String("module", e.ModuleName))
	case *fxevent.Stopping:
		l.logger.Debug("stopping", zap.Stringer("signal", e.Signal))
	case *fxevent.Stopped:
		l.result("stopped", e.Err)
	case *fxevent.RollingBack:
		l.logger.Error("start failed, rolling back", zap.Error(e.StartErr))
	case *fxevent.RolledBack:
		l.result("rolled back", e.Err)
	case *fxevent.Started:
		l.result("started", e.Err)
	case *fxevent.LoggerInitialized:
		l.result("logger initialized", e.Err, zap.String("constructor", e.ConstructorName))
	default:
		l.logger.Debug("event", zap.String("type", fmt.Sprintf("%T", event)))
	}
}

func (l *FxLogger) hook(kind, caller, function, runtime string, err error) {
	fields := []zap.Field{
		zap.String("hook", kind),
		zap.String("caller", caller),
		zap.String("function", function),
	}
	if err != nil {
		l.logger.Error("hook failed", append(fields, zap.Error(err))...)
		return
	}
	l.logger.Debug("hook executed", append(fields, zap.String("runtime", runtime))...)
}

func (l *FxLogger) result(msg string, err error, fields ...zap.Field) {
	if err != nil {
		l.logger.Error(msg+" with error", append(fields, zap.Error(err))...)
		return
	}
	l.logger.Debug(msg, fields...)
}
