package main

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCheckCommandTable(t *testing.T) {
	setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"check", "en", "__jw__", "zz_not_real"}, "")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	requireContains(t, out, "unsupported")
	requireContains(t, out, "Javanese")
	requireContains(t, out, "zz_not_real")
}

func TestCheckCommandStrict(t *testing.T) {
	setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"check", "--strict", "en", "zz"}, "")
	requireErrorContains(t, err, "1 of 2 codes unsupported")

	if _, _, err := runCLI(t, []string{"check", "--strict", "en", "__en__"}, ""); err != nil {
		t.Fatalf("strict check of supported codes: %v", err)
	}
}

func TestCheckCommandJSON(t *testing.T) {
	setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"--json", "check", "en", "zz_not_real"}, "")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	var got []checkResult
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	want := []checkResult{
		{Code: "en", Supported: true, Name: "English"},
		{Code: "zz_not_real", Supported: false, Name: "zz_not_real"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("check mismatch (-want +got):\n%s", diff)
	}
}

func TestNameCommand(t *testing.T) {
	setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"name", "en", "__yue__", "zz_not_real"}, "")
	if err != nil {
		t.Fatalf("name: %v", err)
	}
	if out != "English\nCantonese\nzz_not_real\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestCodeCommand(t *testing.T) {
	setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"code", "haitian", "creole"}, "")
	if err != nil {
		t.Fatalf("code: %v", err)
	}
	if out != "ht\n" {
		t.Fatalf("unexpected output %q", out)
	}

	_, _, err = runCLI(t, []string{"code", "Klingon"}, "")
	requireErrorContains(t, err, `unknown language name "Klingon"`)

	_, _, err = runCLI(t, []string{"code", "Portugese"}, "")
	requireErrorContains(t, err, "did you mean Portuguese")
}

func TestTagCommand(t *testing.T) {
	setupCLITestEnv(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"forward", []string{"tag", "jv"}, "__jw__\n"},
		{"reverse", []string{"tag", "--reverse", "__jw__"}, "jv\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runCLI(t, tt.args, "")
			if err != nil {
				t.Fatalf("%v: %v", tt.args, err)
			}
			if out != tt.want {
				t.Fatalf("output = %q, want %q", out, tt.want)
			}
		})
	}

	_, _, err := runCLI(t, []string{"tag", "ceb"}, "")
	requireErrorContains(t, err, "Cebuano (ceb) has no speech-to-text tag")

	_, _, err = runCLI(t, []string{"tag", "xx"}, "")
	requireErrorContains(t, err, `unknown language code "xx"`)

	_, _, err = runCLI(t, []string{"tag", "-r", "jv"}, "")
	requireErrorContains(t, err, `unknown speech-to-text tag "jv"`)
}

func TestNormalizeCommand(t *testing.T) {
	setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"normalize", "en-US", "pt_BR", "!!"}, "")
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if out != "en-US\ten\tEnglish (en)\npt_BR\tpt\tPortuguese (pt)\n!!\tunsupported\tlanguage '!!'\n" {
		t.Fatalf("unexpected output %q", out)
	}

	_, _, err = runCLI(t, []string{"normalize", "!!"}, "")
	requireErrorContains(t, err, "no input could be normalized")
}

func TestJSONOutputEchoesInputVerbatim(t *testing.T) {
	setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"--json", "name", "<x&y>"}, "")
	if err != nil {
		t.Fatalf("name: %v", err)
	}
	requireContains(t, out, `"name": "<x&y>"`)
}
