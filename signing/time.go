package signing

import "time"

// AmzDateFormat is the strftime-equivalent %Y%m%dT%H%M%SZ layout used for the
// x-amz-date header and the X-Amz-Date query parameter.
const AmzDateFormat = "20060102T150405Z"

// DateStampFormat is the strftime-equivalent %Y%m%d layout used as the date
// component of the credential scope.
const DateStampFormat = "20060102"

// AmzDate formats t (converted to UTC) as amzdate.
func AmzDate(t time.Time) string {
	return t.UTC().Format(AmzDateFormat)
}

// DateStamp formats t (converted to UTC) as datestamp.
func DateStamp(t time.Time) string {
	return t.UTC().Format(DateStampFormat)
}

// Scope builds the credential scope string datestamp/region/s3/aws4_request.
func Scope(t time.Time, region string) string {
	return DateStamp(t) + "/" + region + "/s3/aws4_request"
}
