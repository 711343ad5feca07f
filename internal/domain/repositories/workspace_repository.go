package repositories

// WorkspaceRepository locates the directory target files are relative to and
// makes it the working directory for the duration of a run.
type WorkspaceRepository interface {
	// Root returns the top of the Git work tree containing start, or start
	// itself (made absolute) when it is not inside one.
	Root(start string) (string, error)

	// Enter changes the working directory to dir. The returned function
	// restores the previous working directory.
	Enter(dir string) (func(), error)
}
