// pkg/syncdb/parser.go
package syncdb

import (
	"archive/tar"
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
	"github.com/ulikunitz/xz"

	"github.com/daradege/dastore/pkg/core"
)

var (
	magicGzip = []byte{0x1f, 0x8b}
	magicXz   = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
	magicZstd = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// decompress wraps r with the right decompressor for the database's
// compression. Repositories ship gzip by default but xz and zstd are both
// seen in the wild.
func decompress(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(6)
	if err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "reading database header")
	}

	switch {
	case bytes.HasPrefix(head, magicGzip):
		return gzip.NewReader(br)
	case bytes.HasPrefix(head, magicXz):
		return xz.NewReader(br)
	case bytes.HasPrefix(head, magicZstd):
		dec, err := zstd.NewReader(br)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	default:
		// Uncompressed tar is valid too.
		return br, nil
	}
}

// ParseDB parses a pacman sync database (a compressed tar of per-package
// directories, each holding a "desc" file).
func ParseDB(r io.Reader, repoName string) ([]*core.Package, error) {
	raw, err := decompress(r)
	if err != nil {
		return nil, errors.Wrapf(err, "decompressing %s database", repoName)
	}

	tarReader := tar.NewReader(raw)
	var packages []*core.Package

	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "reading tar entry")
		}
		if header.Typeflag != tar.TypeReg || !strings.HasSuffix(header.Name, "/desc") {
			continue
		}

		pkg, err := parseDesc(tarReader)
		if err != nil {
			continue
		}
		pkg.Repository = repoName
		packages = append(packages, pkg)
	}
	return packages, nil
}

// parseDesc parses the %KEY%\nvalue... format of a desc file.
func parseDesc(r io.Reader) (*core.Package, error) {
	fields := make(map[string][]string)
	var key string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			key = ""
		case strings.HasPrefix(line, "%") && strings.HasSuffix(line, "%"):
			key = strings.Trim(line, "%")
		case key != "":
			fields[key] = append(fields[key], line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	name := first(fields["NAME"])
	if name == "" {
		return nil, errors.New("desc entry without %NAME%")
	}

	return &core.Package{
		Name:          name,
		Version:       first(fields["VERSION"]),
		Description:   first(fields["DESC"]),
		URL:           first(fields["URL"]),
		Licenses:      strings.Join(fields["LICENSE"], " "),
		Groups:        strings.Join(fields["GROUPS"], " "),
		DownloadSize:  humanSize(fields["CSIZE"]),
		InstalledSize: humanSize(fields["ISIZE"]),
		Depends:       fields["DEPENDS"],
		Provides:      fields["PROVIDES"],
		Conflicts:     fields["CONFLICTS"],
		Replaces:      fields["REPLACES"],
	}, nil
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// humanSize renders a byte count field the way pacman -Si prints sizes.
func humanSize(values []string) string {
	raw := first(values)
	if raw == "" {
		return ""
	}
	b, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return raw
	}

	value := float64(b)
	for _, unit := range []string{"B", "KiB", "MiB", "GiB"} {
		if value < 1024 || unit == "GiB" {
			if unit == "B" {
				return fmt.Sprintf("%d B", b)
			}
			return fmt.Sprintf("%.2f %s", value, unit)
		}
		value /= 1024
	}
	return raw
}
