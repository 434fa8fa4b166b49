//go:build wireinject

package nirw

import (
	"github.com/google/wire"
)

func InitApp() (*App, func(), error) {
	panic(wire.Build(Wires))
}
