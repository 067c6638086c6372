package orchestrator_test

import (
	"fmt"
	"sync"

	"go.trai.ch/boot/internal/core/domain"
)

type entry struct {
	level string
	msg   string
	args  []any
}

// recordingLogger captures log calls for assertions.
type recordingLogger struct {
	mu      sync.Mutex
	entries []entry
}

func (l *recordingLogger) add(level, msg string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry{level: level, msg: msg, args: args})
}

func (l *recordingLogger) Debug(msg string, args ...any) { l.add("DEBUG", msg, args) }
func (l *recordingLogger) Info(msg string, args ...any)  { l.add("INFO", msg, args) }
func (l *recordingLogger) Warn(msg string, args ...any)  { l.add("WARN", msg, args) }
func (l *recordingLogger) Error(err error, args ...any) {
	l.add("ERROR", err.Error(), args)
}

func (l *recordingLogger) messages(level string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []string
	for _, e := range l.entries {
		if e.level == level {
			out = append(out, e.msg)
		}
	}
	return out
}

type Repo struct{ dsn string }

type Service struct {
	repo *Repo
}

type Handler struct {
	service *Service
	audit   *Audit
	calls   []string
}

type Audit struct{ name string }

var (
	repoID    = domain.IdentityOf[*Repo]()
	serviceID = domain.IdentityOf[*Service]()
	handlerID = domain.IdentityOf[*Handler]()
	auditID   = domain.IdentityOf[*Audit]()
)

func repoComponent() domain.ComponentDescriptor {
	return domain.ComponentDescriptor{
		ID: repoID,
		Constructors: []domain.Constructor{{
			Name:       "NewRepo",
			Designated: true,
			Build: domain.Build(func(domain.Args) (*Repo, error) {
				return &Repo{dsn: "memory"}, nil
			}),
		}},
	}
}

func serviceComponent() domain.ComponentDescriptor {
	return domain.ComponentDescriptor{
		ID: serviceID,
		Constructors: []domain.Constructor{{
			Name:       "NewService",
			Params:     []domain.Identity{repoID},
			Designated: true,
			Build: domain.Build(func(args domain.Args) (*Service, error) {
				repo, err := domain.Arg[*Repo](args, 0)
				if err != nil {
					return nil, err
				}
				return &Service{repo: repo}, nil
			}),
		}},
	}
}

func handlerComponent(hooks ...domain.HookDescriptor) domain.ComponentDescriptor {
	return domain.ComponentDescriptor{
		ID: handlerID,
		Constructors: []domain.Constructor{{
			Name:       "NewHandler",
			Params:     []domain.Identity{serviceID},
			Designated: true,
			Build: domain.Build(func(args domain.Args) (*Handler, error) {
				svc, err := domain.Arg[*Service](args, 0)
				if err != nil {
					return nil, err
				}
				return &Handler{service: svc}, nil
			}),
		}},
		Fields: []domain.FieldInjection{
			domain.Field("audit", auditID, func(h *Handler, a *Audit) { h.audit = a }),
		},
		Hooks: hooks,
	}
}

func auditComponent() domain.ComponentDescriptor {
	return domain.ComponentDescriptor{
		ID: auditID,
		Constructors: []domain.Constructor{{
			Name:       "NewAudit",
			Designated: true,
			Build: domain.Build(func(domain.Args) (*Audit, error) {
				return &Audit{name: "built"}, nil
			}),
		}},
	}
}

// recordHook returns a sync hook appending its method name to Handler.calls.
func recordHook(method string, priority int) domain.HookDescriptor {
	return domain.Hook(method, priority, false, func(h *Handler) error {
		h.calls = append(h.calls, method)
		return nil
	})
}

// simple declares a component named name whose instance is a *string holding name.
func simple(name string, params ...string) domain.ComponentDescriptor {
	ps := make([]domain.Identity, len(params))
	for i, p := range params {
		ps[i] = domain.NewIdentity(p)
	}
	return domain.ComponentDescriptor{
		ID: domain.NewIdentity(name),
		Constructors: []domain.Constructor{{
			Name:       "New" + name,
			Params:     ps,
			Designated: true,
			Build: func(args domain.Args) (any, error) {
				v := fmt.Sprintf("%s%v", name, len(args))
				return &v, nil
			},
		}},
	}
}
