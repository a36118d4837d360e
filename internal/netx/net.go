// Package netx holds the raw HTTP helpers for moving photo bytes through
// presigned object-store URLs.
package netx

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
)

// UploadToS3PresignedURL PUTs the image bytes to a presigned URL.
func UploadToS3PresignedURL(url string, image []byte) error {
	req, err := http.NewRequest(http.MethodPut, url, bytes.NewReader(image))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "image/png")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("upload failed: %s; body: %s", resp.Status, string(b))
	}
	return nil
}

// DownloadFromS3PresignedURL GETs object bytes from a presigned URL.
func DownloadFromS3PresignedURL(url string) ([]byte, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download failed: %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}
