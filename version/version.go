package version

import (
	"errors"
	"fmt"
	"strings"
)

// Version identifies one released version of the FHIR specification.
type Version int

const (
	STU3 Version = iota + 1
	R4
	R5
)

var ErrBadVersion = errors.New("bad fhir version")

type info struct {
	name    string
	release string
	pkg     string
}

var infos = map[Version]info{
	STU3: {name: "stu3", release: "3.0.2", pkg: "google.fhir.stu3.proto"},
	R4:   {name: "r4", release: "4.0.1", pkg: "google.fhir.r4.core"},
	R5:   {name: "r5", release: "5.0.0", pkg: "google.fhir.r5.core"},
}

func ParseVersion(v string) (Version, error) {
	key := strings.ToLower(strings.TrimSpace(v))
	for _, ver := range All() {
		in := infos[ver]
		if key == in.name || key == in.release {
			return ver, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadVersion, v)
}

// FromProtoPackage returns the version whose datatypes are declared in the
// schema package pkg.
func FromProtoPackage(pkg string) (Version, error) {
	for _, ver := range All() {
		if infos[ver].pkg == pkg {
			return ver, nil
		}
	}
	return 0, fmt.Errorf("%w: no version declared by package %q", ErrBadVersion, pkg)
}

func (v Version) String() string {
	d, err := v.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (v Version) MarshalText() ([]byte, error) {
	in, ok := infos[v]
	if !ok {
		return nil, fmt.Errorf("<err: %d is not a fhir version>", int(v))
	}
	return []byte(in.name), nil
}

func (v *Version) UnmarshalText(d []byte) error {
	pv, err := ParseVersion(string(d))
	if err != nil {
		return err
	}
	*v = pv
	return nil
}

func (v Version) IsValid() bool {
	_, ok := infos[v]
	return ok
}

// Release returns the numeric FHIR release, e.g. "4.0.1".
func (v Version) Release() string {
	return infos[v].release
}

// ProtoPackage returns the schema package carrying this version's types.
func (v Version) ProtoPackage() string {
	return infos[v].pkg
}

// All returns the supported versions in release order.
func All() []Version {
	return []Version{STU3, R4, R5}
}
