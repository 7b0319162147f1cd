// internal/bridge/builder.go
package bridge

import (
	"fmt"
	"time"

	cfg "github.com/tamzrod/glove-bridge/internal/config"
	"github.com/tamzrod/glove-bridge/internal/link"
	"github.com/tamzrod/glove-bridge/internal/sensor"
)

// BuildLink opens the serial link described by the bridge config.
// The returned link is never nil; on error it is down and the error is
// meant for Options.LinkErr.
func BuildLink(sc cfg.SerialConfig) (*link.Serial, error) {
	return link.Build(sc.Driver, sc.Port, link.Options{
		BaudRate: sc.BaudRate,
		DataBits: sc.DataBits,
		StopBits: sc.StopBits,
		Parity:   sc.Parity,
		Timeout:  time.Duration(sc.TimeoutMs) * time.Millisecond,
	})
}

// BuildTable binds every configured sensor to its bank bit.
// Assumes config has already passed validation and normalization.
func BuildTable(bindings []cfg.BindingConfig, bank *sensor.Bank) (*sensor.Table, error) {
	t := sensor.NewTable()

	for _, bc := range bindings {
		id, err := sensor.ParseName(bc.Sensor)
		if err != nil {
			return nil, err
		}
		if err := t.Bind(id, sensor.BitReader{Bank: bank, Bit: bc.Bit}); err != nil {
			return nil, fmt.Errorf("binding %s: %w", bc.Sensor, err)
		}
	}

	return t, nil
}
