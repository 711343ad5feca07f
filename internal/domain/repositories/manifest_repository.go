package repositories

// ManifestRepository reads and overwrites target files. Read errors for
// missing files wrap fs.ErrNotExist.
type ManifestRepository interface {
	Read(path string) (string, error)
	Write(path, content string) error
}
