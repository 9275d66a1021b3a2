package counter

import (
	"fmt"
	"sort"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/labkit/go-counter/logger"
)

// Factory constructs a Counter driver bound to a device session.
type Factory func(transport Transport, session Session, log logger.Logger) (Counter, error)

var drivers = xsync.NewMapOf[string, Factory]()

// Register makes a driver factory available under the given model name.
// Drivers call Register from their package init function.
func Register(model string, factory Factory) {
	drivers.Store(model, factory)
}

// New constructs a Counter for the given model name using its registered
// factory. It returns an error when no driver is registered for the model.
func New(model string, transport Transport, session Session, log logger.Logger) (Counter, error) {
	factory, ok := drivers.Load(model)
	if !ok {
		return nil, fmt.Errorf("no driver registered for model %q", model)
	}

	return factory(transport, session, log)
}

// Models returns the sorted model names of all registered drivers.
func Models() []string {
	models := make([]string, 0, drivers.Size())
	drivers.Range(func(model string, _ Factory) bool {
		models = append(models, model)
		return true
	})
	sort.Strings(models)

	return models
}
