package config

import "testing"

func TestParsePreset(t *testing.T) {
	tests := []struct {
		name    string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"normal", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"fixed", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.name)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.name, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.name, got, tc.want)
		}
	}
}

func TestApplyFlappyPreset(t *testing.T) {
	base := DefaultFlappyConfig()

	normal := base
	ApplyFlappyPreset(&normal, DifficultyNormal)
	if normal != base {
		t.Error("normal preset should not change the config")
	}

	easy := base
	ApplyFlappyPreset(&easy, DifficultyEasy)
	if easy.Obstacles.Gap <= base.Obstacles.Gap {
		t.Errorf("easy gap %v should exceed %v", easy.Obstacles.Gap, base.Obstacles.Gap)
	}
	if easy.Obstacles.Speed >= base.Obstacles.Speed {
		t.Errorf("easy speed %v should be below %v", easy.Obstacles.Speed, base.Obstacles.Speed)
	}
	if easy.Obstacles.SpawnInterval != 100 {
		t.Errorf("easy spawn interval = %d, expected 100", easy.Obstacles.SpawnInterval)
	}

	hard := base
	ApplyFlappyPreset(&hard, DifficultyHard)
	if hard.Obstacles.Gap >= base.Obstacles.Gap {
		t.Errorf("hard gap %v should be below %v", hard.Obstacles.Gap, base.Obstacles.Gap)
	}
	if hard.Obstacles.SpawnInterval != 80 {
		t.Errorf("hard spawn interval = %d, expected 80", hard.Obstacles.SpawnInterval)
	}
}
