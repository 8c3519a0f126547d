// Package credentials inserts and overwrites temporary profiles in the AWS
// shared credentials file.
//
// A profile is four consecutive lines: a bracketed header followed by the
// access key, secret key and session token lines. Updates only ever touch
// those four positions; everything else in the file is kept byte for byte.
package credentials

import (
	"errors"
	"regexp"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
)

const (
	AccessKeyPrefix    = "aws_access_key_id="
	SecretKeyPrefix    = "aws_secret_access_key="
	SessionTokenPrefix = "aws_session_token="
)

var (
	headerRe       = regexp.MustCompile(`(?i)^\[[0-9]{12}[A-Z\-_0-9]{6,}\]$`)
	accessKeyRe    = regexp.MustCompile(`^aws_access_key_id=[A-Z0-9]{20}$`)
	secretKeyRe    = regexp.MustCompile(`^aws_secret_access_key=[^=]{40}$`)
	sessionTokenRe = regexp.MustCompile(`^aws_session_token=[^=]{892,}$`)
)

// Lines already in the file are checked case-insensitively.
var existingPatterns = [3]*regexp.Regexp{
	regexp.MustCompile(`(?i)` + accessKeyRe.String()),
	regexp.MustCompile(`(?i)` + secretKeyRe.String()),
	regexp.MustCompile(`(?i)` + sessionTokenRe.String()),
}

var bodyFields = [3]Field{FieldAccessKey, FieldSecretKey, FieldSessionToken}

// Profile is one block of temporary credentials.
type Profile struct {
	Header          string
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
}

// Parse validates the four raw lines of a profile block and returns the profile.
// Every failing line is reported; errors.Is matches each field's sentinel.
func Parse(lines [4]string) (Profile, error) {
	checks := []struct {
		field Field
		re    *regexp.Regexp
	}{
		{FieldHeader, headerRe},
		{FieldAccessKey, accessKeyRe},
		{FieldSecretKey, secretKeyRe},
		{FieldSessionToken, sessionTokenRe},
	}

	var errs []error
	for i, c := range checks {
		if !c.re.MatchString(lines[i]) {
			errs = append(errs, &ValidationError{Field: c.field})
		}
	}
	if err := errors.Join(errs...); err != nil {
		return Profile{}, err
	}

	return Profile{
		Header:          lines[0],
		AccessKeyID:     strings.TrimPrefix(lines[1], AccessKeyPrefix),
		SecretAccessKey: strings.TrimPrefix(lines[2], SecretKeyPrefix),
		SessionToken:    strings.TrimPrefix(lines[3], SessionTokenPrefix),
	}, nil
}

// Validate checks the profile against the same patterns as Parse.
func (p Profile) Validate() error {
	_, err := Parse(p.rawLines())
	return err
}

// Lines returns the four lines written to the credentials file.
func (p Profile) Lines() []string {
	l := p.rawLines()
	return l[:]
}

func (p Profile) rawLines() [4]string {
	return [4]string{
		p.Header,
		AccessKeyPrefix + p.AccessKeyID,
		SecretKeyPrefix + p.SecretAccessKey,
		SessionTokenPrefix + p.SessionToken,
	}
}

// Name is the header without its brackets, as the AWS SDK names the profile.
func (p Profile) Name() string {
	return strings.TrimSuffix(strings.TrimPrefix(p.Header, "["), "]")
}

// AccountID is the 12 digit account the profile belongs to.
func (p Profile) AccountID() string {
	name := p.Name()
	if len(name) < 12 {
		return ""
	}
	return name[:12]
}

// Role is the part of the profile name after the account ID.
func (p Profile) Role() string {
	name := p.Name()
	if len(name) <= 12 {
		return ""
	}
	return strings.TrimLeft(name[12:], "_-")
}

// Credentials returns the profile as SDK credentials.
func (p Profile) Credentials() aws.Credentials {
	return aws.Credentials{
		AccessKeyID:     p.AccessKeyID,
		SecretAccessKey: p.SecretAccessKey,
		SessionToken:    p.SessionToken,
		Source:          "credpaste",
	}
}
