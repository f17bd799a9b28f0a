package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// memoryFile is a file or directory entry.
type memoryFile struct {
	content []byte
	info    *memoryFileInfo
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// It is not safe for concurrent use.
type MemoryFileSystem struct {
	files      map[string]*memoryFile // map of absolute path -> entry
	root       string                 // root directory path
	readErrors map[string]error
	writeFail  func(path string) error
	now        func() time.Time
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		files:      make(map[string]*memoryFile),
		root:       root,
		readErrors: make(map[string]error),
		now:        time.Now,
	}
	mfs.addDir(root)

	return mfs
}

// Root returns the virtual root directory.
func (mfs *MemoryFileSystem) Root() string {
	return mfs.root
}

// AddFile adds a file to the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.AddFileWithTime(filePath, content, mfs.now())
}

// AddFileWithTime adds a file with a specific modification time
func (mfs *MemoryFileSystem) AddFileWithTime(filePath string, content string, modTime time.Time) {
	absPath := mfs.resolve(filePath)
	mfs.files[absPath] = &memoryFile{
		content: []byte(content),
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(content)),
			mode:    0644,
			modTime: modTime,
		},
	}
	mfs.ensureDirectoriesExist(absPath)
}

// AddDir adds an empty directory.
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	absPath := mfs.resolve(dirPath)
	mfs.addDir(absPath)
	mfs.ensureDirectoriesExist(absPath)
}

// SetReadError makes ReadFile on filePath fail with err.
func (mfs *MemoryFileSystem) SetReadError(filePath string, err error) {
	mfs.readErrors[mfs.resolve(filePath)] = err
}

// FailWrites makes WriteFile and Rename consult fn; a non-nil result is
// returned instead of performing the operation. Pass nil to clear.
func (mfs *MemoryFileSystem) FailWrites(fn func(path string) error) {
	mfs.writeFail = fn
}

// Content returns the content stored at filePath and whether it exists as a file.
func (mfs *MemoryFileSystem) Content(filePath string) (string, bool) {
	f, ok := mfs.files[mfs.resolve(filePath)]
	if !ok || f.info.isDir {
		return "", false
	}
	return string(f.content), true
}

// Paths returns every file path (directories excluded), sorted.
func (mfs *MemoryFileSystem) Paths() []string {
	var paths []string
	for p, f := range mfs.files {
		if !f.info.isDir {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)
	return paths
}

func (mfs *MemoryFileSystem) addDir(absPath string) {
	if _, exists := mfs.files[absPath]; exists {
		return
	}
	mfs.files[absPath] = &memoryFile{
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			mode:    0755 | fs.ModeDir,
			modTime: mfs.now(),
			isDir:   true,
		},
	}
}

// ensureDirectoriesExist creates directory entries for all parent directories
func (mfs *MemoryFileSystem) ensureDirectoriesExist(filePath string) {
	dir := path.Dir(filePath)
	if dir == filePath || dir == "." {
		return
	}
	if _, exists := mfs.files[dir]; exists {
		return
	}
	mfs.addDir(dir)
	mfs.ensureDirectoriesExist(dir)
}

// resolve maps a relative or absolute path onto the virtual filesystem.
func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

func notExist(op, p string) error {
	return &fs.PathError{Op: op, Path: p, Err: fs.ErrNotExist}
}

// ReadDir implements FileSystemProvider.ReadDir
func (mfs *MemoryFileSystem) ReadDir(dirPath string) ([]FileInfo, error) {
	absPath := mfs.resolve(dirPath)
	dir, ok := mfs.files[absPath]
	if !ok {
		return nil, fmt.Errorf("failed to read directory: %w", notExist("readdir", dirPath))
	}
	if !dir.info.isDir {
		return nil, fmt.Errorf("path is not a directory: %s", dirPath)
	}

	var result []FileInfo
	for p, f := range mfs.files {
		if p != absPath && path.Dir(p) == absPath {
			result = append(result, f.info)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})

	return result, nil
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	absPath := mfs.resolve(filePath)
	if err, ok := mfs.readErrors[absPath]; ok {
		return nil, err
	}

	file, exists := mfs.files[absPath]
	if !exists {
		return nil, notExist("open", filePath)
	}
	if file.info.isDir {
		return nil, fmt.Errorf("read %s: is a directory", filePath)
	}

	out := make([]byte, len(file.content))
	copy(out, file.content)
	return out, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	file, exists := mfs.files[mfs.resolve(statPath)]
	if !exists {
		return nil, notExist("stat", statPath)
	}
	return file.info, nil
}

// WriteFile implements FileSystemProvider.WriteFile
func (mfs *MemoryFileSystem) WriteFile(filePath string, data []byte, perm fs.FileMode) error {
	absPath := mfs.resolve(filePath)
	if mfs.writeFail != nil {
		if err := mfs.writeFail(absPath); err != nil {
			return err
		}
	}

	parent, ok := mfs.files[path.Dir(absPath)]
	if !ok || !parent.info.isDir {
		return notExist("open", filePath)
	}
	if existing, ok := mfs.files[absPath]; ok && existing.info.isDir {
		return fmt.Errorf("open %s: is a directory", filePath)
	}

	content := make([]byte, len(data))
	copy(content, data)
	mfs.files[absPath] = &memoryFile{
		content: content,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(content)),
			mode:    perm,
			modTime: mfs.now(),
		},
	}
	return nil
}

// Rename implements FileSystemProvider.Rename
func (mfs *MemoryFileSystem) Rename(oldPath, newPath string) error {
	src := mfs.resolve(oldPath)
	dst := mfs.resolve(newPath)
	if mfs.writeFail != nil {
		if err := mfs.writeFail(dst); err != nil {
			return err
		}
	}

	file, ok := mfs.files[src]
	if !ok {
		return notExist("rename", oldPath)
	}
	if file.info.isDir {
		return fmt.Errorf("rename %s: directories are not supported", oldPath)
	}

	delete(mfs.files, src)
	renamed := *file.info
	renamed.name = path.Base(dst)
	mfs.files[dst] = &memoryFile{content: file.content, info: &renamed}
	return nil
}

// Remove implements FileSystemProvider.Remove
func (mfs *MemoryFileSystem) Remove(filePath string) error {
	absPath := mfs.resolve(filePath)
	if _, ok := mfs.files[absPath]; !ok {
		return notExist("remove", filePath)
	}
	for p := range mfs.files {
		if strings.HasPrefix(p, absPath+"/") {
			return fmt.Errorf("remove %s: directory not empty", filePath)
		}
	}
	delete(mfs.files, absPath)
	return nil
}

var _ FileSystemProvider = (*MemoryFileSystem)(nil)
