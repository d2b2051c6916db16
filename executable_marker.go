package rubygoals

import "os"

// FileModeMarker sets the executable bits on files it is given.
type FileModeMarker struct{}

func NewFileModeMarker() FileModeMarker {
	return FileModeMarker{}
}

func (m FileModeMarker) MarkExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	return os.Chmod(path, info.Mode().Perm()|0111)
}
