package source

import "github.com/samber/mo"

// Result is the outcome of one episode attempt.
// OutputPath is present exactly when Succeeded is true.
type Result struct {
	Episode    *Episode
	Succeeded  bool
	Skipped    bool
	OutputPath mo.Option[string]
	Err        error
}

// Downloaded records a transcript written to path.
func Downloaded(episode *Episode, path string) *Result {
	return &Result{Episode: episode, Succeeded: true, OutputPath: mo.Some(path)}
}

// AlreadyPresent records an episode skipped because path already exists.
func AlreadyPresent(episode *Episode, path string) *Result {
	return &Result{Episode: episode, Succeeded: true, Skipped: true, OutputPath: mo.Some(path)}
}

// Failed records an attempt that produced no file.
func Failed(episode *Episode, err error) *Result {
	return &Result{Episode: episode, Err: err, OutputPath: mo.None[string]()}
}
