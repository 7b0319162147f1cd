// internal/link/builder.go
package link

// Build opens port with the named driver.
// A failed open is not fatal: the returned link is down and err says why.
// An unknown driver yields a down link and an error wrapping ErrUnknownDriver.
func Build(driver, port string, opts Options) (*Serial, error) {
	open, err := DriverFor(driver)
	if err != nil {
		return &Serial{path: port, openErr: err}, err
	}
	return Open(port, opts, open)
}
