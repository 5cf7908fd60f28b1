package explorer

import "testing"

func TestJoinAndParent(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		folder string
		joined string
	}{
		{"root", Root, "Work", `C:\Work`},
		{"nested", `C:\Work`, "Old", `C:\Work\Old`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Join(tt.path, tt.folder)
			if got != tt.joined {
				t.Fatalf("Join = %q, want %q", got, tt.joined)
			}
			if back := Parent(got); back != tt.path {
				t.Fatalf("Parent(%q) = %q, want %q", got, back, tt.path)
			}
		})
	}
}

func TestParentAtRootIsNoOp(t *testing.T) {
	if got := Parent(Root); got != Root {
		t.Fatalf("Parent(root) = %q", got)
	}
	if got := Parent(Parent(Root)); got != Root {
		t.Fatalf("repeated Parent(root) = %q", got)
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		full, dir, name string
	}{
		{`C:\About.txt`, Root, "About.txt"},
		{`C:\Work\London-Consultants.txt`, WorkFolder, "London-Consultants.txt"},
		{`C:\Work\FirstBus: Easy Transport for Students.txt`, WorkFolder, "FirstBus: Easy Transport for Students.txt"},
		{"About.txt", Root, "About.txt"},
	}
	for _, tt := range tests {
		dir, name := Split(tt.full)
		if dir != tt.dir || name != tt.name {
			t.Errorf("Split(%q) = (%q, %q), want (%q, %q)", tt.full, dir, name, tt.dir, tt.name)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", `C:\`},
		{`C:\`, `C:\`},
		{"C:", `C:\`},
		{`c:\Work`, `C:\Work`},
		{`C:\Work\`, `C:\Work`},
		{"C:/Work", `C:\Work`},
		{"Work", `C:\Work`},
		{`\Work`, `C:\Work`},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
