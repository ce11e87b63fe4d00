package romgfx

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const numWorkers = 10

// Object tile data is expected to have one of these extensions
func isObjects(file string) bool {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".map16", ".obj16":
		return true
	}
	return false
}

func (m *ROMGfx) findFiles(ctx context.Context, base string) (<-chan string, <-chan error, error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories
			if info.Name()[0] == '.' && file != base {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			// Ignore anything that isn't a normal file
			if !info.Mode().IsRegular() {
				return nil
			}

			if !isObjects(file) {
				return nil
			}

			// Ignore anything bigger than a bank's worth of records
			if info.Size() > 64<<10 {
				m.logger.Printf("Skipping \"%s\", %d bytes is too large\n", file, info.Size())
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc, nil
}

func (m *ROMGfx) renderWorker(ctx context.Context, in <-chan string, opts Options) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for file := range in {
			out := strings.TrimSuffix(file, filepath.Ext(file)) + ".png"
			if err := m.RenderFile(file, out, opts); err != nil {
				errc <- err
				return
			}
		}
	}()
	return errc, nil
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// RenderDirectory renders every .map16 or .obj16 file found under path to a
// PNG image alongside it. The same options are used for every file.
func (m *ROMGfx) RenderDirectory(path string, opts Options) error {
	dir, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	files, errc, err := m.findFiles(ctx, dir)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	for i := 0; i < numWorkers; i++ {
		errc, err := m.renderWorker(ctx, files, opts)
		if err != nil {
			return err
		}
		errcList = append(errcList, errc)
	}

	return waitForPipeline(errcList...)
}
