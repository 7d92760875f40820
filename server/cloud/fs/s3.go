// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package fs

import (
	"bytes"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/credentials/ec2rolecreds"
	"github.com/aws/aws-sdk-go/aws/ec2metadata"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/pkg/errors"
)

// AWSProfile is the shared credentials profile used when ~/.aws/credentials exists.
const AWSProfile = "crater"

type S3Filesystem struct {
	svc          *s3.S3
	staticBucket string
}

// New connects to bucket in region, falling back to Offline if bucket is empty.
func New(region, bucket string) (Filesystem, error) {
	if bucket == "" {
		return Offline{}, nil
	}
	sess, err := getAWSSession(region)
	if err != nil {
		return nil, errors.Wrap(err, "aws session")
	}
	return NewS3Filesystem(sess, bucket)
}

func NewS3Filesystem(session *session.Session, bucket string) (*S3Filesystem, error) {
	if bucket == "" {
		return nil, errors.New("no bucket")
	}
	return &S3Filesystem{svc: s3.New(session), staticBucket: bucket}, nil
}

func (s3Filesystem *S3Filesystem) String() string {
	return "s3://" + s3Filesystem.staticBucket
}

var s3ContentTypes = map[string]string{
	".json": "application/json",
	".png":  "image/png",
}

// contentType patches S3's limited vocabulary of default content types.
func contentType(filename string) *string {
	for ext, mime := range s3ContentTypes {
		if strings.HasSuffix(filename, ext) {
			mime := mime
			return &mime
		}
	}
	return nil
}

func (s3Filesystem *S3Filesystem) UploadStaticFile(filename string, secondsCache int, data []byte) error {
	req, _ := s3Filesystem.svc.PutObjectRequest(&s3.PutObjectInput{
		Bucket:       aws.String(s3Filesystem.staticBucket),
		Key:          aws.String(filename),
		Body:         bytes.NewReader(data),
		CacheControl: aws.String(fmt.Sprintf("no-transform, public, max-age=%d", secondsCache)),
		ContentType:  contentType(filename),
	})
	return errors.Wrapf(req.Send(), "upload %s", filename)
}

func getAWSSession(region string) (*session.Session, error) {
	usr, err := user.Current()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(usr.HomeDir, ".aws", "credentials")

	var creds *credentials.Credentials
	if _, err := os.Stat(path); err == nil {
		creds = credentials.NewSharedCredentials(path, AWSProfile)
	} else {
		creds = credentials.NewCredentials(&ec2rolecreds.EC2RoleProvider{Client: ec2metadata.New(session.Must(session.NewSession()))})
	}
	return session.NewSession(&aws.Config{
		Region:      aws.String(region),
		Credentials: creds,
	})
}
