package mockdb

import (
	"context"
	"database/sql/driver"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Driver serves canned results from a Registry. The instance registered with
// database/sql under DriverName uses Default.
type Driver struct {
	registry *Registry
}

// NewDriver creates a driver bound to registry.
func NewDriver(registry *Registry) *Driver {
	return &Driver{registry: registry}
}

func (d *Driver) Open(name string) (driver.Conn, error) {
	c, err := d.OpenConnector(name)
	if err != nil {
		return nil, err
	}
	return c.Connect(context.Background())
}

func (d *Driver) OpenConnector(name string) (driver.Connector, error) {
	return &connector{registry: d.registry, dsn: name}, nil
}

type connector struct {
	registry *Registry
	dsn      string
}

func (c *connector) Connect(ctx context.Context) (driver.Conn, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.registry.lookup(c.dsn).Failures().Open {
		return nil, errors.Join(ErrOpenFailed, ErrSimulated)
	}

	rec := &ConnectionRecord{
		ID:               uuid.NewString(),
		ConnectionString: c.dsn,
		OpenedAt:         time.Now(),
	}
	c.registry.recordConnection(rec)

	return &conn{id: rec.ID, dsn: c.dsn, registry: c.registry}, nil
}

func (c *connector) Driver() driver.Driver {
	return &Driver{registry: c.registry}
}
