// Package job loads keyframe job files and runs the curve and IK pipelines
// they describe.
package job

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/puppetbox/rigkey"
	"github.com/puppetbox/rigkey/keyframe"
	"gopkg.in/yaml.v3"
)

// ErrInvalidJob is returned for job files that decode but cannot be run.
var ErrInvalidJob = errors.New("job: invalid job")

// maxJobSize bounds the job files read by Load.
const maxJobSize = 1 << 20

// Vec is a point as written in job files: {x: 1, y: 2}.
type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Point converts v to a rigkey.Point.
func (v Vec) Point() rigkey.Point {
	return rigkey.Pt(v.X, v.Y)
}

// Job is the content of a job file. Either section may be absent.
type Job struct {
	Curve *CurveJob `yaml:"curve"`
	IK    *IKJob    `yaml:"ik"`
}

// CurveJob samples a path into position keyframes.
type CurveJob struct {
	Path    string `yaml:"path"`
	Offset  Vec    `yaml:"offset"`
	Samples int    `yaml:"samples"`
	Bone    string `yaml:"bone"`
	Depth   *int   `yaml:"depth"` // pointer to distinguish unset vs 0
}

// IKJob solves one rotation keyframe per target.
type IKJob struct {
	Pose     PoseSpec `yaml:"pose"`
	Targets  []Vec    `yaml:"targets"`
	Shoulder string   `yaml:"shoulder"`
	Elbow    string   `yaml:"elbow"`
}

// PoseSpec is the resting pose of the arm.
type PoseSpec struct {
	A Vec `yaml:"a"`
	B Vec `yaml:"b"`
	C Vec `yaml:"c"`
}

// Pose converts p to a rigkey.Pose.
func (p PoseSpec) Pose() rigkey.Pose {
	return rigkey.Pose{A: p.A.Point(), B: p.B.Point(), C: p.C.Point()}
}

// Load reads and parses the job file at path.
func Load(path string) (*Job, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("job: %w", err)
	}
	if info.Size() > maxJobSize {
		return nil, fmt.Errorf("%w: %s is %d bytes, limit %d", ErrInvalidJob, path, info.Size(), maxJobSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("job: %w", err)
	}
	j, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return j, nil
}

// Parse decodes a job file, applies defaults and validates it.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func Parse(data []byte) (*Job, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var j Job
	if err := dec.Decode(&j); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty job file", ErrInvalidJob)
		}
		return nil, fmt.Errorf("job: decode: %w", err)
	}
	j.applyDefaults()
	if err := j.Validate(); err != nil {
		return nil, err
	}
	return &j, nil
}

func (j *Job) applyDefaults() {
	if c := j.Curve; c != nil {
		if c.Bone == "" {
			c.Bone = keyframe.DefaultPositionBone
		}
		if c.Depth == nil {
			d := keyframe.DefaultDepth
			c.Depth = &d
		}
	}
	if ik := j.IK; ik != nil {
		if ik.Shoulder == "" {
			ik.Shoulder = keyframe.DefaultShoulderBone
		}
		if ik.Elbow == "" {
			ik.Elbow = keyframe.DefaultElbowBone
		}
	}
}

// Validate reports the first problem that would stop the job from running.
func (j *Job) Validate() error {
	if j.Curve == nil && j.IK == nil {
		return fmt.Errorf("%w: neither curve nor ik section present", ErrInvalidJob)
	}
	if c := j.Curve; c != nil {
		if c.Path == "" {
			return fmt.Errorf("%w: curve.path is empty", ErrInvalidJob)
		}
		if c.Samples <= 0 {
			return fmt.Errorf("%w: curve.samples must be positive, got %d", ErrInvalidJob, c.Samples)
		}
	}
	if ik := j.IK; ik != nil {
		if len(ik.Targets) == 0 {
			return fmt.Errorf("%w: ik.targets is empty", ErrInvalidJob)
		}
		if err := ik.Pose.Pose().Validate(); err != nil {
			return fmt.Errorf("%w: ik.pose: %w", ErrInvalidJob, err)
		}
	}
	return nil
}

// Points parses and samples the curve section.
func (c *CurveJob) Points() ([]rigkey.Point, error) {
	segments, err := rigkey.ParsePath(c.Path, c.Offset.Point())
	if err != nil {
		return nil, fmt.Errorf("job: curve.path: %w", err)
	}
	points := rigkey.SamplePath(segments, c.Samples)
	rigkey.Logger().Info("job: sampled curve", "segments", len(segments), "points", len(points))
	return points, nil
}

// TargetPoints returns the IK targets in frame order.
func (ik *IKJob) TargetPoints() []rigkey.Point {
	points := make([]rigkey.Point, len(ik.Targets))
	for i, t := range ik.Targets {
		points[i] = t.Point()
	}
	return points
}

// Results solves every target in frame order.
func (ik *IKJob) Results() ([]rigkey.Result, error) {
	results, err := rigkey.SolveAll(ik.Pose.Pose(), ik.TargetPoints())
	if err != nil {
		return nil, fmt.Errorf("job: ik: %w", err)
	}
	rigkey.Logger().Info("job: solved ik", "frames", len(results))
	return results, nil
}
