package event

// Property bag keys understood by the native layer.
// The suffix names the expected property kind.
const (
	PropAppMetadataName       = "SDL.app.metadata.name"
	PropAppMetadataVersion    = "SDL.app.metadata.version"
	PropAppMetadataIdentifier = "SDL.app.metadata.identifier"
	PropAppMetadataCreator    = "SDL.app.metadata.creator"
	PropAppMetadataCopyright  = "SDL.app.metadata.copyright"
	PropAppMetadataURL        = "SDL.app.metadata.url"
	PropAppMetadataType       = "SDL.app.metadata.type"
)

// AppMetadataKeys lists property keys in the order the native layer documents them.
var AppMetadataKeys = []string{
	PropAppMetadataName,
	PropAppMetadataVersion,
	PropAppMetadataIdentifier,
	PropAppMetadataCreator,
	PropAppMetadataCopyright,
	PropAppMetadataURL,
	PropAppMetadataType,
}
