package storage

import (
	"errors"
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "daer.png", "daer.png"},
		{"spaces replaced", "mi foto.png", "mi_foto.png"},
		{"path traversal stripped", "../../etc/passwd", "passwd"},
		{"windows path stripped", `C:\Users\daer\foto.jpg`, "foto.jpg"},
		{"hostile chars replaced", "a<b>c?.png", "a_b_c_.png"},
		{"leading dot trimmed", ".hidden", "hidden"},
		{"only dots", "...", ""},
		{"empty", "", ""},
		{"unicode replaced", "títúlo.png", "t_t_lo.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeFilename(tt.in); got != tt.want {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidateExtension(t *testing.T) {
	tests := []struct {
		filename string
		wantErr  bool
	}{
		{"foto.png", false},
		{"foto.jpg", false},
		{"foto.JPEG", false},
		{"anim.gif", false},
		{"doc.pdf", true},
		{"script.php", true},
		{"noextension", true},
		{"", true},
	}
	for _, tt := range tests {
		err := ValidateExtension(tt.filename, ImageExtensions)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateExtension(%q) error = %v, wantErr %v", tt.filename, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrExtensionNotAllowed) {
			t.Errorf("ValidateExtension(%q) error = %v, want ErrExtensionNotAllowed", tt.filename, err)
		}
	}
}

func TestProfileImageName(t *testing.T) {
	tests := []struct {
		username string
		original string
		want     string
	}{
		{"daer", "foto.png", "daer.png"},
		{"daer", "FOTO.PNG", "daer.png"},
		{"daer", "mi foto.jpeg", "daer.jpeg"},
		{"daer", "../../evil.gif", "daer.gif"},
	}
	for _, tt := range tests {
		if got := ProfileImageName(tt.username, tt.original); got != tt.want {
			t.Errorf("ProfileImageName(%q, %q) = %q, want %q", tt.username, tt.original, got, tt.want)
		}
	}
}
