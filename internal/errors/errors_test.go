package errors

import (
	stderrors "errors"
	"fmt"
	"io"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"plain", Input("no files provided"), "[INPUT_ERROR] no files provided"},
		{"wrapped", Archive("board.zip", io.ErrUnexpectedEOF), "[ARCHIVE_ERROR] failed to open archive: unexpected EOF"},
		{"formatted", NotSupported("output format xml"), "[NOT_SUPPORTED] operation not supported: output format xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTypeThroughWrapping(t *testing.T) {
	err := fmt.Errorf("analyze: %w", Archive("board.zip", io.ErrUnexpectedEOF))

	if !IsType(err, TypeArchive) {
		t.Errorf("IsType(TypeArchive) = false for %v", err)
	}
	if IsType(err, TypeInput) {
		t.Errorf("IsType(TypeInput) = true for %v", err)
	}
	if got := TypeOf(err); got != TypeArchive {
		t.Errorf("TypeOf() = %s, want %s", got, TypeArchive)
	}
	if !stderrors.Is(err, io.ErrUnexpectedEOF) {
		t.Error("cause not reachable through Unwrap")
	}
	if got := TypeOf(io.EOF); got != TypeInternal {
		t.Errorf("TypeOf(plain error) = %s, want %s", got, TypeInternal)
	}
}

func TestWithContext(t *testing.T) {
	err := Archive("gerbers.zip", io.EOF)
	if got := err.Context["archive"]; got != "gerbers.zip" {
		t.Errorf("archive context = %v, want gerbers.zip", got)
	}
}
