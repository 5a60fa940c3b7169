package greeter

import (
	"strings"

	"github.com/km-arc/go-inject/framework/config"
	"github.com/km-arc/go-inject/framework/container"
)

// Tokens bound by Register.
var (
	ClockToken      = container.TypeOf[Clock]()
	IDsToken        = container.TypeOf[IDGenerator]()
	PhrasebookToken = container.TypeOf[*Phrasebook]()
	GreeterToken    = container.TypeOf[*Greeter]()

	// LanguageToken resolves to its first argument, or DefaultLanguage.
	LanguageToken = container.Name("greeter.language")
)

func init() {
	if err := Register(container.Default()); err != nil {
		panic(err)
	}
}

// Register binds the greeter components into r. It only fills tokens that
// are still empty, so calling it twice, or after overriding a component,
// is safe.
func Register(r *container.Registry) error {
	r.ProvideValue(ClockToken, SystemClock{})
	r.ProvideValue(IDsToken, UUIDGenerator{})
	r.RegisterIfAbsent(LanguageToken, func(args ...any) (any, error) {
		if len(args) > 0 {
			if lang, ok := args[0].(string); ok && lang != "" {
				return lang, nil
			}
		}
		return DefaultLanguage, nil
	})

	if _, err := r.Provide(NewPhrasebook, container.WithLifetime(container.Singleton)); err != nil {
		return err
	}

	_, err := r.Provide(NewGreeter,
		container.WithAlias(container.Name("greeter")),
		container.WithParams(
			container.Param(0, PhrasebookToken),
			container.Param(1, ClockToken),
			container.Param(2, IDsToken),
			container.Param(3, LanguageToken,
				// read on every construction so GREETER_LANG changes apply
				container.WithArgs(container.Lazy(func() any {
					return config.Get("GREETER_LANG", DefaultLanguage)
				})),
				container.WithTransform(normalizeLanguage),
			),
		),
	)
	return err
}

func normalizeLanguage(v any) (any, error) {
	return strings.ToLower(strings.TrimSpace(v.(string))), nil
}
