package elementary

import (
	"spacetime-ca/internal/core"
)

func init() {
	for _, k := range Kinds() {
		core.Register(k.String(), func(cfg map[string]string) (core.Sim, error) {
			c, err := FromMap(cfg)
			if err != nil {
				return nil, err
			}
			c.Strategy = k
			return New(c)
		})
	}
}
