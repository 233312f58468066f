package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TuningFile is the YAML shape of an optional tuning override file.
// Only the fields present in the file are applied; everything else keeps
// the init defaults. Pointers distinguish "absent" from zero.
type TuningFile struct {
	Physics *struct {
		Gravity        *float64 `yaml:"gravity"`
		FallMultiplier *float64 `yaml:"fall_multiplier"`
		MaxFallSpeed   *float64 `yaml:"max_fall_speed"`
	} `yaml:"physics"`
	Player *struct {
		MoveSpeed      *float64 `yaml:"move_speed"`
		JumpForce      *float64 `yaml:"jump_force"`
		CoyoteTime     *float64 `yaml:"coyote_time"`
		JumpBufferTime *float64 `yaml:"jump_buffer_time"`
		MaxHealth      *int     `yaml:"max_health"`
		InvulnTime     *float64 `yaml:"invuln_time"`
	} `yaml:"player"`
	Camera *struct {
		FollowSmoothing    *float64 `yaml:"follow_smoothing"`
		LookAheadDistanceX *float64 `yaml:"look_ahead_distance_x"`
	} `yaml:"camera"`
}

// Load applies a YAML tuning file on top of the built-in defaults.
// A missing file at the default path is not an error; an explicit path
// that cannot be read or parsed is.
func Load(path string, explicit bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var file TuningFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	Apply(&file)
	return nil
}

// Apply copies the set fields of a tuning file onto the global config.
func Apply(file *TuningFile) {
	if p := file.Physics; p != nil {
		setFloat(&Physics.Gravity, p.Gravity)
		setFloat(&Physics.FallMultiplier, p.FallMultiplier)
		setFloat(&Physics.MaxFallSpeed, p.MaxFallSpeed)
	}
	if p := file.Player; p != nil {
		setFloat(&Player.MoveSpeed, p.MoveSpeed)
		setFloat(&Player.JumpForce, p.JumpForce)
		setFloat(&Player.CoyoteTime, p.CoyoteTime)
		setFloat(&Player.JumpBufferTime, p.JumpBufferTime)
		setInt(&Player.MaxHealth, p.MaxHealth)
		setFloat(&Player.InvulnTime, p.InvulnTime)
	}
	if c := file.Camera; c != nil {
		setFloat(&Camera.FollowSmoothing, c.FollowSmoothing)
		setFloat(&Camera.LookAheadDistanceX, c.LookAheadDistanceX)
	}
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}
