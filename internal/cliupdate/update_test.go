package cliupdate

import (
	"bytes"
	"strings"
	"testing"
)

func TestSelectBestReleasePicksHighestSemver(t *testing.T) {
	releases := []ghRelease{
		{TagName: "v1.0.0"},
		{TagName: "v1.2.0"},
		{TagName: "v1.1.5"},
	}
	got, found, err := selectBestRelease(releases)
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Fatal("expected a release to be found")
	}
	if got.Version.String() != "1.2.0" {
		t.Fatalf("got version %s, want 1.2.0", got.Version)
	}
}

func TestSelectBestReleaseSkipsDraftsAndPrereleases(t *testing.T) {
	releases := []ghRelease{
		{TagName: "v2.0.0", Draft: true},
		{TagName: "v3.0.0", Prerelease: true},
		{TagName: "v1.5.0"},
	}
	got, found, err := selectBestRelease(releases)
	if err != nil {
		t.Fatal(err)
	}
	if !found || got.Version.String() != "1.5.0" {
		t.Fatalf("got %+v, want v1.5.0", got)
	}
}

func TestSelectBestReleaseReturnsNotFoundWhenNoneMatch(t *testing.T) {
	releases := []ghRelease{
		{TagName: "not-a-version"},
	}
	_, found, err := selectBestRelease(releases)
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Fatal("expected no release to be selected")
	}
}

func TestSelectBestReleasePrefersPlatformAsset(t *testing.T) {
	releases := []ghRelease{
		{
			TagName: "v1.0.0",
			Assets: []struct {
				Name               string `json:"name"`
				BrowserDownloadURL string `json:"browser_download_url"`
			}{
				{Name: "checksums.txt", BrowserDownloadURL: "https://example.com/checksums.txt"},
				{Name: "wangtile_linux_amd64.tar.gz", BrowserDownloadURL: "https://example.com/linux.tar.gz"},
			},
		},
	}
	got, found, err := selectBestRelease(releases)
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Fatal("expected a release")
	}
	if got.AssetURL != "https://example.com/linux.tar.gz" {
		t.Fatalf("got asset URL %q, want the linux asset", got.AssetURL)
	}
}

func TestPromptLineTrimsWhitespace(t *testing.T) {
	var out bytes.Buffer
	answer, err := promptLine(strings.NewReader("  yes  \n"), &out, "Update? ")
	if err != nil {
		t.Fatal(err)
	}
	if answer != "yes" {
		t.Fatalf("got %q, want %q", answer, "yes")
	}
	if !strings.Contains(out.String(), "Update? ") {
		t.Fatalf("expected prompt to be written to out, got %q", out.String())
	}
}
