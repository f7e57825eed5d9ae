package option

// Option configures a Config value.
type Option[Config any] interface {
	Configure(*Config)
}

// Func makes an Option out of a plain configuring function.
type Func[Config any] func(*Config)

func (fn Func[Config]) Configure(c *Config) { fn(c) }

// ToConfig reduces the received options into a Config value.
// When the Config type knows how to initialise itself, initialisation runs first.
func ToConfig[Config any](opts []Option[Config]) Config {
	var c Config
	if init, ok := any(&c).(initer); ok {
		init.Init()
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.Configure(&c)
	}
	return c
}

type initer interface {
	Init()
}
