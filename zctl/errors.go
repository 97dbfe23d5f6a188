package zctl

// ReloadError indicates that a watched rules file changed on disk
// but could not be read or parsed; the previous debug state was kept.
type ReloadError struct {
	Path string
	Err  error
}

func (e ReloadError) Error() string {
	return "failed to reload rules from " + e.Path + ": " + e.Err.Error()
}

func (e ReloadError) Unwrap() error {
	return e.Err
}
