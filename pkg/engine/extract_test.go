package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTypedFields(t *testing.T) {
	got := ExtractEntities(map[string]any{
		"src_ip":    "192.168.1.100",
		"dst_ip":    "10.0.0.5",
		"hostname":  "workstation-042",
		"user":      "jdoe",
		"file_hash": "D41D8CD98F00B204E9800998ECF8427E",
	})
	assert.Equal(t, []string{"10.0.0.5", "192.168.1.100"}, got["ip"])
	assert.Equal(t, []string{"workstation-042"}, got["hostname"])
	assert.Equal(t, []string{"jdoe"}, got["user"])
	assert.Equal(t, []string{"d41d8cd98f00b204e9800998ecf8427e"}, got["hash"], "hashes are lowercased")
}

func TestExtractFromFreeText(t *testing.T) {
	got := ExtractEntities(map[string]any{
		"message": "connection from 203.0.113.7 to evil-domain.com, dropped 8.8.8.8",
	})
	assert.Equal(t, []string{"203.0.113.7", "8.8.8.8"}, got["ip"])
	assert.Equal(t, []string{"evil-domain.com"}, got["domain"])
}

func TestExtractHashesFromFreeText(t *testing.T) {
	sha256 := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	got := ExtractEntities(map[string]any{
		"details": "dropped file with hash " + sha256,
	})
	assert.Equal(t, []string{sha256}, got["hash"])
}

func TestExtractSkipsFilenames(t *testing.T) {
	got := ExtractEntities(map[string]any{
		"message": "spawned powershell.exe then contacted c2.badhost.net",
	})
	assert.Equal(t, []string{"c2.badhost.net"}, got["domain"])
}

func TestExtractIgnoresNonStrings(t *testing.T) {
	got := ExtractEntities(map[string]any{
		"port":  443,
		"bytes": 10240.0,
		"flag":  true,
	})
	assert.Nil(t, got)
}

func TestExtractRejectsInvalidIPs(t *testing.T) {
	got := ExtractEntities(map[string]any{
		"message": "bogus address 999.999.999.999 here",
	})
	assert.Empty(t, got["ip"])
}

func TestMergeEntities(t *testing.T) {
	dst := map[string][]string{"ip": {"10.0.0.1"}}
	src := map[string][]string{"ip": {"10.0.0.1", "10.0.0.2"}, "user": {"admin"}}
	got := MergeEntities(dst, src)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, got["ip"])
	assert.Equal(t, []string{"admin"}, got["user"])

	assert.Nil(t, MergeEntities(nil, nil))
	fromNil := MergeEntities(nil, map[string][]string{"ip": {"10.0.0.9"}})
	assert.Equal(t, []string{"10.0.0.9"}, fromNil["ip"])
}
