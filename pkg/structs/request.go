package structs

// Fields are extra key-value pairs the platform accepts on a request.
//
// These are set at the top level of the request body and replace any key
// of the same name, including required ones (eg. "source").
type Fields map[string]interface{}

// copyFields returns a new map holding the same entries as in (never nil).
func copyFields(in Fields) Fields {
	out := Fields{}
	for k, v := range in {
		out[k] = v
	}
	return out
}

// overlay sets each optional field on the payload, later keys win.
func overlay(payload map[string]interface{}, opt Fields) map[string]interface{} {
	for k, v := range opt {
		payload[k] = v
	}
	return payload
}

// ExportRequest describes a file to copy from the platform out to a volume.
type ExportRequest struct {
	// SourceFile is the platform ID of the file to export.
	//
	// Required.
	SourceFile string `json:"source_file" mapstructure:"source_file"`

	// DestinationVolume is the name of the volume as mounted on the
	// platform (ie. not the bucket path).
	//
	// Required.
	DestinationVolume string `json:"destination_volume" mapstructure:"destination_volume"`

	// DestinationLocation is the key to create, relative to the volume.
	//
	// Required.
	DestinationLocation string `json:"destination_location" mapstructure:"destination_location"`

	// OptionalFields eg. {"overwrite": true}
	OptionalFields Fields `json:"optional_fields" mapstructure:"optional_fields"`
}

// NewExportRequest returns an ExportRequest holding its own copy of opt.
func NewExportRequest(file, volume, location string, opt Fields) *ExportRequest {
	return &ExportRequest{
		SourceFile:          file,
		DestinationVolume:   volume,
		DestinationLocation: location,
		OptionalFields:      copyFields(opt),
	}
}

// Payload returns the body to POST to the platform.
func (r *ExportRequest) Payload() map[string]interface{} {
	return overlay(map[string]interface{}{
		"source": map[string]interface{}{
			"file": r.SourceFile,
		},
		"destination": map[string]interface{}{
			"volume":   r.DestinationVolume,
			"location": r.DestinationLocation,
		},
	}, r.OptionalFields)
}

// ImportRequest describes a file to copy from a volume into the platform.
type ImportRequest struct {
	// SourceVolume is the name of the volume as mounted on the platform.
	//
	// Required.
	SourceVolume string `json:"source_volume" mapstructure:"source_volume"`

	// SourceLocation is the key of the file, relative to the volume.
	//
	// Required.
	SourceLocation string `json:"source_location" mapstructure:"source_location"`

	// DestinationParent is the ID of the platform folder to import into.
	//
	// Required.
	DestinationParent string `json:"destination_parent" mapstructure:"destination_parent"`

	// OptionalFields eg. {"overwrite": true}
	OptionalFields Fields `json:"optional_fields" mapstructure:"optional_fields"`
}

// NewImportRequest returns an ImportRequest holding its own copy of opt.
func NewImportRequest(volume, location, parent string, opt Fields) *ImportRequest {
	return &ImportRequest{
		SourceVolume:      volume,
		SourceLocation:    location,
		DestinationParent: parent,
		OptionalFields:    copyFields(opt),
	}
}

// Payload returns the body to POST to the platform.
func (r *ImportRequest) Payload() map[string]interface{} {
	return overlay(map[string]interface{}{
		"source": map[string]interface{}{
			"volume":   r.SourceVolume,
			"location": r.SourceLocation,
		},
		"destination": map[string]interface{}{
			"parent": r.DestinationParent,
		},
	}, r.OptionalFields)
}
