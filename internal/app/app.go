package app

// restoreLogin hands a stored token to the backend client. A profile stored
// for a different server is ignored. Load errors surface later through
// Auth.Require, so they are only logged here.
func (w *Wire) restoreLogin() {
	l := w.Log.GetLogger("app")
	p, ok, err := w.Auth.Current()
	if err != nil {
		l.Warningf("stored login unavailable: %v", err)
		return
	}
	if !ok {
		return
	}
	if p.ServerURL != "" && p.ServerURL != w.Backend.Base {
		l.Warningf("stored login is for %s, not %s; ignoring it", p.ServerURL, w.Backend.Base)
		return
	}
	w.Backend.SetToken(p.Token)
}

// Close releases the log backend.
func (w *Wire) Close() error {
	return w.Log.Close()
}
