package main

import (
	"testing"
)

func TestValuesCommand(t *testing.T) {
	tests := []struct {
		name           string
		section        string
		wantErr        bool
		wantContain    []string
		wantNotContain []string
		wantJSON       bool
	}{
		{
			name:           "section with arrays",
			section:        "server",
			wantContain:    []string{"host=example.com", "ports[0]=80", "ports[1]=443"},
			wantNotContain: []string{"timeout"},
		},
		{
			name:        "global section",
			section:     "",
			wantContain: []string{"timeout=30"},
		},
		{
			name:        "json output",
			section:     "server",
			wantJSON:    true,
			wantContain: []string{`"host": "example.com"`, `"0": "80"`},
		},
		{
			name:    "missing section",
			section: "nope",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			jsonOut = tt.wantJSON

			path := writeTempINI(t, "sample.ini", sampleDoc)

			output, err := captureOutput(t, func() error {
				return runValues([]string{path, tt.section})
			})

			if (err != nil) != tt.wantErr {
				t.Errorf("runValues() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if tt.wantJSON {
				assertJSON(t, output)
			}

			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}

func TestSectionsCommand(t *testing.T) {
	resetFlags()
	path := writeTempINI(t, "sample.ini", sampleDoc)

	output, err := captureOutput(t, func() error {
		return runSections([]string{path})
	})
	if err != nil {
		t.Fatalf("runSections() error = %v", err)
	}
	assertContains(t, output, []string{"ik_global", "server", "empty"})

	resetFlags()
	sectionsCounts = true
	output, err = captureOutput(t, func() error {
		return runSections([]string{path})
	})
	if err != nil {
		t.Fatalf("runSections() with --counts error = %v", err)
	}
	assertContains(t, output, []string{"server\t2", "empty\t0"})

	resetFlags()
	jsonOut = true
	output, err = captureOutput(t, func() error {
		return runSections([]string{path})
	})
	if err != nil {
		t.Fatalf("runSections() with --json error = %v", err)
	}
	assertJSON(t, output)
	assertContains(t, output, []string{"server"})
}

func TestKeysCommand(t *testing.T) {
	tests := []struct {
		name           string
		section        string
		wantErr        bool
		wantContain    []string
		wantNotContain []string
		wantJSON       bool
	}{
		{
			name:           "server keys in order",
			section:        "server",
			wantContain:    []string{"host", "ports"},
			wantNotContain: []string{"timeout", "app config"},
		},
		{
			name:        "empty section lists nothing",
			section:     "empty",
			wantContain: []string{},
		},
		{
			name:    "missing section",
			section: "nope",
			wantErr: true,
		},
		{
			name:        "json output",
			section:     "server",
			wantJSON:    true,
			wantContain: []string{`"host"`, `"ports"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			jsonOut = tt.wantJSON

			path := writeTempINI(t, "sample.ini", sampleDoc)

			output, err := captureOutput(t, func() error {
				return runKeys([]string{path, tt.section})
			})

			if (err != nil) != tt.wantErr {
				t.Errorf("runKeys() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if tt.wantJSON {
				assertJSON(t, output)
			}

			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}
