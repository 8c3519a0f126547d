package credentials

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
)

// Verify loads want's profile from the shared credentials and config files the
// way the AWS SDK does and checks that it yields the same credentials. Nothing
// leaves the machine; only the files are read.
func Verify(ctx context.Context, credentialsPath, configPath string, want Profile) error {
	sc, err := config.LoadSharedConfigProfile(ctx, want.Name(), func(o *config.LoadSharedConfigOptions) {
		o.CredentialsFiles = []string{credentialsPath}
		o.ConfigFiles = []string{configPath}
	})
	if err != nil {
		return fmt.Errorf("AWS SDK could not load profile %s: %w", want.Name(), err)
	}

	got, expected := sc.Credentials, want.Credentials()
	switch {
	case got.AccessKeyID != expected.AccessKeyID:
		return fmt.Errorf("%w: access key differs for profile %s", ErrMismatch, want.Name())
	case got.SecretAccessKey != expected.SecretAccessKey:
		return fmt.Errorf("%w: secret key differs for profile %s", ErrMismatch, want.Name())
	case got.SessionToken != expected.SessionToken:
		return fmt.Errorf("%w: session token differs for profile %s", ErrMismatch, want.Name())
	}
	return nil
}
