package carver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/seamcarving/carver/utils"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

// MaxWorkers sets the maximum number of concurrently running workers.
const MaxWorkers = 20

// validExtensions lists the supported image file extensions.
var validExtensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".gif"}

// Ops describes the source and destination of a resize run.
type Ops struct {
	// Src and Dst are file paths, directories, http(s) URLs (Src only) or PipeName.
	Src, Dst string
	// PipeName is the name standing for stdin or stdout, usually "-".
	PipeName string
	// Workers bounds the number of images resized concurrently in directory mode.
	Workers int
	// Spinner, when set, is displayed while a single image is being resized.
	Spinner *utils.Spinner
}

// Execute runs the resize operation described by op. The source can be a single image,
// an image URL, stdin, or a directory whose images are resized concurrently into the
// destination directory. Every image is processed independently; in directory mode the
// failures are logged as they happen and returned together once the walk is over.
func (p *Processor) Execute(ctx context.Context, op *Ops) error {
	logger := p.logger()
	now := time.Now()

	src := op.Src
	if utils.IsValidUrl(src) {
		f, err := utils.DownloadImage(src)
		if err != nil {
			return fmt.Errorf("failed to load the source image: %w", err)
		}
		defer os.Remove(f.Name())
		f.Close()
		src = f.Name()
	}

	var (
		info os.FileInfo
		err  error
	)
	if src == op.PipeName {
		info, err = os.Stdin.Stat()
	} else {
		info, err = os.Stat(src)
	}
	if err != nil {
		return fmt.Errorf("failed to load the source image: %w", err)
	}

	switch mode := info.Mode(); {
	case mode.IsDir():
		err = p.executeDir(ctx, op, src)
	case mode.IsRegular() || mode&os.ModeNamedPipe != 0 || mode&os.ModeCharDevice != 0:
		ext := strings.ToLower(filepath.Ext(op.Dst))
		if op.Dst != op.PipeName && !slices.Contains(validExtensions, ext) {
			return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
		}
		err = p.executeFile(op, src, op.Dst)
		if err == nil && op.Dst != op.PipeName {
			logger.Info("image saved", "path", op.Dst)
		}
	default:
		return fmt.Errorf("unsupported source %q", op.Src)
	}
	if err != nil {
		return err
	}
	logger.Debug("done", "elapsed", utils.FormatTime(time.Since(now)))
	return nil
}

// executeFile resizes a single image, showing the spinner if one is configured.
// The spinner's stop message is only printed when the image was resized.
func (p *Processor) executeFile(op *Ops, in, out string) (err error) {
	if s := op.Spinner; s != nil {
		s.Start()
		defer func() {
			if err != nil {
				s.StopMsg = ""
			}
			s.Stop()
		}()
	}
	return p.processFile(op.PipeName, in, out)
}

// executeDir walks the source directory and resizes the supported images concurrently.
func (p *Processor) executeDir(ctx context.Context, op *Ops, src string) error {
	logger := p.logger()
	if op.Dst == op.PipeName {
		return errors.New("a directory source needs a destination directory")
	}
	if err := os.MkdirAll(op.Dst, 0755); err != nil {
		return fmt.Errorf("unable to create the destination directory: %w", err)
	}

	workers := op.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	// Limit the concurrently running workers to MaxWorkers.
	workers = utils.Clamp(workers, 1, MaxWorkers)

	// The destination may live inside the source tree; its content must not be walked.
	skip, err := filepath.Abs(op.Dst)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	paths := walkDir(ctx, g, src, skip, validExtensions)
	results := make(chan error)

	var consumers errgroup.Group
	for i := 0; i < workers; i++ {
		consumers.Go(func() error {
			for path := range paths {
				results <- p.processInto(logger, src, op.Dst, path)
			}
			return nil
		})
	}
	go func() {
		_ = consumers.Wait()
		close(results)
	}()

	var errs []error
	for err := range results {
		if err != nil {
			errs = append(errs, err)
		}
	}
	if err := g.Wait(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// processInto resizes the image at path into the mirrored location under dst.
func (p *Processor) processInto(logger *log.Logger, root, dst, path string) error {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = filepath.Base(path)
	}
	out := filepath.Join(dst, rel)
	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		return err
	}

	if err := p.processFile("", path, out); err != nil {
		err = fmt.Errorf("%s: %w", path, err)
		logger.Error("resizing image failed", "path", path, "err", err)
		return err
	}
	logger.Info("image saved", "path", out)
	return nil
}

// processFile calls the resizer over the source image. The destination file
// is removed in case of an error.
func (p *Processor) processFile(pipeName, in, out string) (err error) {
	src, dst, err := pathToFile(pipeName, in, out)
	if err != nil {
		return err
	}
	defer src.Close()
	defer func() {
		if cerr := dst.Close(); err == nil {
			err = cerr
		}
		if err != nil && out != pipeName {
			os.Remove(out)
		}
	}()

	return p.Process(src, dst)
}

// nopCloser wraps stdin and stdout, which must not be closed after a run.
type nopCloser struct{ *os.File }

func (nopCloser) Close() error { return nil }

// pathToFile converts the source and destination paths to readable and writable files.
func pathToFile(pipeName, in, out string) (io.ReadCloser, io.WriteCloser, error) {
	var (
		src io.ReadCloser
		dst io.WriteCloser
	)
	// Check if the source is a pipe name or a regular file.
	if pipeName != "" && in == pipeName {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, nil, errors.New("`-` should be used with a pipe for stdin")
		}
		src = nopCloser{os.Stdin}
	} else {
		f, err := os.Open(in)
		if err != nil {
			return nil, nil, fmt.Errorf("unable to open the source file: %w", err)
		}
		src = f
	}

	// Check if the destination is a pipe name or a regular file.
	if pipeName != "" && out == pipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			src.Close()
			return nil, nil, errors.New("`-` should be used with a pipe for stdout")
		}
		dst = nopCloser{os.Stdout}
	} else {
		f, err := os.OpenFile(out, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			src.Close()
			return nil, nil, fmt.Errorf("unable to create the destination file: %w", err)
		}
		dst = f
	}
	return src, dst, nil
}

// walkDir walks the directory tree in a goroutine of g and sends the path of every
// supported image on the returned channel, which is closed once the walk is over.
// The skip directory (an absolute path) is left out unless it is the root itself.
// The walk stops early when ctx is cancelled.
func walkDir(ctx context.Context, g *errgroup.Group, root, skip string, exts []string) <-chan string {
	paths := make(chan string)

	g.Go(func() error {
		defer close(paths)

		return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if skip != "" && path != root {
					if abs, err := filepath.Abs(path); err == nil && abs == skip {
						return filepath.SkipDir
					}
				}
				return nil
			}
			if !d.Type().IsRegular() {
				return nil
			}
			if !slices.Contains(exts, strings.ToLower(filepath.Ext(d.Name()))) {
				return nil
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case paths <- path:
			}
			return nil
		})
	})
	return paths
}
