// Package fetch downloads bulk appraisal-district and MLS exports over HTTP
// or FTP. It is a boundary concern: the analysis engine never performs I/O.
package fetch

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/jlaffaye/ftp"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Options configures the downloader.
type Options struct {
	Timeout   time.Duration // per-download; default 60s
	UserAgent string
}

// Downloader retrieves files by URL, dispatching on scheme.
type Downloader struct {
	opts   Options
	client *http.Client
}

// NewDownloader creates a Downloader with the given options.
func NewDownloader(opts Options) *Downloader {
	if opts.Timeout == 0 {
		opts.Timeout = 60 * time.Second
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "lotsplit/1.0"
	}
	return &Downloader{
		opts:   opts,
		client: &http.Client{Timeout: opts.Timeout},
	}
}

// Download opens a stream for the given URL. Supports http, https, and ftp
// schemes. The caller must close the returned ReadCloser.
func (d *Downloader) Download(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, eris.Wrapf(err, "fetch: parse url %s", rawURL)
	}

	switch u.Scheme {
	case "http", "https":
		return d.downloadHTTP(ctx, rawURL)
	case "ftp":
		return d.downloadFTP(ctx, u)
	default:
		return nil, eris.Errorf("fetch: unsupported scheme %q", u.Scheme)
	}
}

// DownloadToFile downloads the URL to a local path. Returns bytes written.
func (d *Downloader) DownloadToFile(ctx context.Context, rawURL, path string) (int64, error) {
	rc, err := d.Download(ctx, rawURL)
	if err != nil {
		return 0, err
	}
	defer rc.Close()

	f, err := os.Create(path)
	if err != nil {
		return 0, eris.Wrapf(err, "fetch: create %s", path)
	}
	defer f.Close()

	n, err := io.Copy(f, rc)
	if err != nil {
		return n, eris.Wrap(err, "fetch: write file")
	}
	zap.L().Info("fetch: downloaded", zap.String("url", rawURL), zap.Int64("bytes", n))
	return n, nil
}

func (d *Downloader) downloadHTTP(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "fetch: build request")
	}
	req.Header.Set("User-Agent", d.opts.UserAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, eris.Wrapf(err, "fetch: get %s", rawURL)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, eris.Errorf("fetch: %s returned status %d", rawURL, resp.StatusCode)
	}
	return resp.Body, nil
}

func (d *Downloader) downloadFTP(ctx context.Context, u *url.URL) (io.ReadCloser, error) {
	host := u.Host
	if _, _, splitErr := net.SplitHostPort(host); splitErr != nil {
		host = net.JoinHostPort(host, "21")
	}
	if u.Path == "" {
		return nil, eris.New("fetch: empty path in ftp url")
	}

	zap.L().Debug("fetch: ftp connect", zap.String("host", host), zap.String("path", u.Path))

	conn, err := ftp.Dial(host, ftp.DialWithTimeout(d.opts.Timeout), ftp.DialWithContext(ctx))
	if err != nil {
		return nil, eris.Wrap(err, "fetch: ftp dial")
	}
	if err := conn.Login("anonymous", "anonymous@"); err != nil {
		conn.Quit()
		return nil, eris.Wrap(err, "fetch: ftp login")
	}

	resp, err := conn.Retr(u.Path)
	if err != nil {
		conn.Quit()
		return nil, eris.Wrap(err, "fetch: ftp retrieve")
	}
	return &ftpConnReader{resp: resp, conn: conn}, nil
}

// ftpConnReader ties the FTP data stream to its control connection so that
// closing the reader also quits the session.
type ftpConnReader struct {
	resp *ftp.Response
	conn *ftp.ServerConn
}

func (r *ftpConnReader) Read(p []byte) (int, error) {
	return r.resp.Read(p)
}

func (r *ftpConnReader) Close() error {
	respErr := r.resp.Close()
	quitErr := r.conn.Quit()
	if respErr != nil {
		return eris.Wrap(respErr, "fetch: close ftp response")
	}
	if quitErr != nil {
		return eris.Wrap(quitErr, "fetch: quit ftp connection")
	}
	return nil
}
