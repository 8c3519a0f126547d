package credentials

import (
	"os"
	"regexp"
	"strings"

	"github.com/spf13/afero"
	pkgtypes "github.com/vietdv277/credpaste/pkg/types"
)

var (
	sectionRe = regexp.MustCompile(`^\[([^\]]+)\]$`)
	accountRe = regexp.MustCompile(`^[0-9]{12}`)
)

// List returns every bracketed section of the credentials file in file order.
// A missing file yields no sections.
func List(fs afero.Fs, path string) ([]pkgtypes.ProfileSummary, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}

	lines := strings.Split(string(data), "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	var profiles []pkgtypes.ProfileSummary
	for i, line := range lines {
		matches := sectionRe.FindStringSubmatch(line)
		if len(matches) != 2 {
			continue
		}

		summary := pkgtypes.ProfileSummary{
			Name:      matches[1],
			Line:      i + 1,
			AccountID: accountRe.FindString(matches[1]),
		}
		if i+1 < len(lines) && strings.HasPrefix(lines[i+1], AccessKeyPrefix) {
			summary.AccessKeyID = strings.TrimPrefix(lines[i+1], AccessKeyPrefix)
		}
		summary.Complete = complete(lines[i+1:])

		profiles = append(profiles, summary)
	}

	return profiles, nil
}

func complete(body []string) bool {
	if len(body) < len(existingPatterns) {
		return false
	}
	for i, re := range existingPatterns {
		if !re.MatchString(body[i]) {
			return false
		}
	}
	return true
}
