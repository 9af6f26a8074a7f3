package tuning

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// PhysicsFile is the tuning file read at startup and on hot reload.
const PhysicsFile = "physics.yaml"

// Physics holds every constant the simulation reads. Units are pixels,
// seconds and degrees.
type Physics struct {
	Gravity float32 `yaml:"gravity"`

	PlaneVelocityLimit float32 `yaml:"plane_velocity_limit"`
	PlaneMass          float32 `yaml:"plane_mass"`
	PlaneWingArea      float32 `yaml:"plane_wing_area"`
	PlaneTurnRate      float32 `yaml:"plane_turn_rate"`
	PlaneThrust        float32 `yaml:"plane_thrust"`

	RiderMass                      float32 `yaml:"rider_mass"`
	RiderGravity                   float32 `yaml:"rider_gravity"`
	RiderVelocityYLimit            float32 `yaml:"rider_velocity_y_limit"`
	RiderInputVelocityLimit        float32 `yaml:"rider_input_velocity_limit"`
	RiderInputVelocityAcceleration float32 `yaml:"rider_input_velocity_acceleration"`
	RiderInputBrake                float32 `yaml:"rider_input_brake"`
	AirFrictionAcc                 float32 `yaml:"air_friction_acc"`
	RiderFirstJump                 float32 `yaml:"rider_first_jump"`
	RiderSecondJump                float32 `yaml:"rider_second_jump"`
	RiderSeatSink                  float32 `yaml:"rider_seat_sink"`

	// Seconds that must pass after a remount before the rider can jump
	// again, and after a jump before the rider can remount.
	AttachCooldown float32 `yaml:"attach_cooldown"`
	JumpCooldown   float32 `yaml:"jump_cooldown"`

	CrashAnimBase     float32 `yaml:"crash_anim_base"`
	CrashAnimStep     float32 `yaml:"crash_anim_step"`
	WreckGravityScale float32 `yaml:"wreck_gravity_scale"`
	WreckRestSpeed    float32 `yaml:"wreck_rest_speed"`

	RenderOffsetX  float32 `yaml:"render_offset_x"`
	RenderOffsetY  float32 `yaml:"render_offset_y"`
	RenderPadding  float32 `yaml:"render_padding"`
	BoundThickness float32 `yaml:"bound_thickness"`
	CameraLead     float32 `yaml:"camera_lead"`
}

// Default returns the values the game ships with. physics.yaml mirrors them.
func Default() Physics {
	return Physics{
		Gravity: 400,

		PlaneVelocityLimit: 600,
		PlaneMass:          1,
		PlaneWingArea:      0.5,
		PlaneTurnRate:      180,
		PlaneThrust:        300,

		RiderMass:                      0.5,
		RiderGravity:                   900,
		RiderVelocityYLimit:            700,
		RiderInputVelocityLimit:        250,
		RiderInputVelocityAcceleration: 900,
		RiderInputBrake:                400,
		AirFrictionAcc:                 60,
		RiderFirstJump:                 350,
		RiderSecondJump:                300,
		RiderSeatSink:                  4,

		AttachCooldown: 0.5,
		JumpCooldown:   0.5,

		CrashAnimBase:     0.4,
		CrashAnimStep:     0.1,
		WreckGravityScale: 1.5,
		WreckRestSpeed:    40,

		RenderOffsetX:  0,
		RenderOffsetY:  -2,
		RenderPadding:  4,
		BoundThickness: 50,
		CameraLead:     0.3,
	}
}

func LoadSpec[T any](filename string, base T) (T, error) {
	data, err := Load(filename)
	if err != nil {
		return base, fmt.Errorf("tuning: load %s: %w", filename, err)
	}

	spec := base
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return base, fmt.Errorf("tuning: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

// LoadPhysics reads physics.yaml on top of Default, so keys missing from the
// file keep their shipped values.
func LoadPhysics() (Physics, error) {
	p, err := LoadSpec(PhysicsFile, Default())
	if err != nil {
		return Default(), err
	}
	if err := p.Validate(); err != nil {
		return Default(), fmt.Errorf("tuning: %s: %w", PhysicsFile, err)
	}
	return p, nil
}

// Validate rejects values that would divide by zero or disable the caps.
func (p Physics) Validate() error {
	switch {
	case p.PlaneMass <= 0:
		return fmt.Errorf("plane_mass must be positive, got %v", p.PlaneMass)
	case p.RiderMass < 0:
		return fmt.Errorf("rider_mass must not be negative, got %v", p.RiderMass)
	case p.PlaneVelocityLimit <= 0:
		return fmt.Errorf("plane_velocity_limit must be positive, got %v", p.PlaneVelocityLimit)
	case p.RiderVelocityYLimit <= 0:
		return fmt.Errorf("rider_velocity_y_limit must be positive, got %v", p.RiderVelocityYLimit)
	case p.RiderInputVelocityLimit <= 0:
		return fmt.Errorf("rider_input_velocity_limit must be positive, got %v", p.RiderInputVelocityLimit)
	}
	return nil
}
