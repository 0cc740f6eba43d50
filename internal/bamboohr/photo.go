package bamboohr

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"
)

const defaultPhotoSize = "small"

func (c *client) GetEmployeePhoto(ctx context.Context, employeeID int, size string) ([]byte, error) {
	if size == "" {
		size = defaultPhotoSize
	}
	r := newRequest(fmt.Sprintf("/employees/%d/photo/%s", employeeID, size), http.MethodGet, BinaryMode)
	return call(ctx, c, r, statusPolicy[[]byte]{
		http.StatusOK: rawBody(),
	})
}

// PhotoURL is the public photo lookup address for an employee's email.
func (c *client) PhotoURL(email string) string {
	return c.CompanyURL + "/employees/photos/?h=" + hashEmail(email)
}

func hashEmail(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return hex.EncodeToString(sum[:])
}

// UploadEmployeePhoto sends a square jpg, gif or png of at most 20MB.
func (c *client) UploadEmployeePhoto(ctx context.Context, employeeID int, data []byte, fileName string) (bool, error) {
	path := fmt.Sprintf("/employees/%d/photo", employeeID)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return false, invalidInput(path, "could not build photo upload", err)
	}
	if _, err = part.Write(data); err != nil {
		return false, invalidInput(path, "could not build photo upload", err)
	}
	if err = writer.Close(); err != nil {
		return false, invalidInput(path, "could not build photo upload", err)
	}

	r := newRequest(path, http.MethodPost, BinaryMode).withBody(writer.FormDataContentType(), body.Bytes())
	return call(ctx, c, r, statusPolicy[bool]{
		http.StatusCreated:               acknowledge(),
		http.StatusBadRequest:            failWith[bool](ErrUnknownEmployee, "employee %d doesn't exist", employeeID),
		http.StatusRequestEntityTooLarge: failWith[bool](ErrFileTooLarge, "employee %d photo is too big, max size is 20MB", employeeID),
		http.StatusUnsupportedMediaType:  failWith[bool](ErrUnsupportedFormat, "employee %d photo is not a supported format or is not square", employeeID),
	})
}
