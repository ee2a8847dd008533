package router

import (
	"io/fs"
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
)

// filesOnly exposes a directory without listings. A folder opens only when
// it carries an index.html, anything else reads as missing.
type filesOnly struct {
	fs http.FileSystem
}

func newFilesOnly(dir string) http.FileSystem {
	return filesOnly{fs: gin.Dir(dir, false)}
}

func (f filesOnly) Open(name string) (http.File, error) {
	file, err := f.fs.Open(name)
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	if !info.IsDir() {
		return file, nil
	}

	index, err := f.fs.Open(path.Join(name, "index.html"))
	if err != nil {
		_ = file.Close()
		return nil, fs.ErrNotExist
	}
	_ = index.Close()
	return file, nil
}
