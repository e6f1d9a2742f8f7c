package input

// Reader reads a whole file into an owned Buffer.
// The caller must Release the returned Buffer exactly once.
type Reader interface {
	Read(path string) (*Buffer, error)
}

// ReadFile loads path with the default Loader.
func ReadFile(path string) (*Buffer, error) {
	return NewLoader().Read(path)
}
