// seehuhn.de/go/exiv - EXIF, IPTC and XMP image metadata in Go
// Copyright (C) 2024  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package exiv

// EXIF groups.  The group names follow the IFD in which a tag is stored.
const (
	ExifImage     = "Image"     // IFD0
	ExifPhoto     = "Photo"     // Exif sub-IFD
	ExifGPS       = "GPSInfo"   // GPS sub-IFD
	ExifIop       = "Iop"       // Interoperability sub-IFD
	ExifThumbnail = "Thumbnail" // IFD1
)

// exifSections maps EXIF section names to their descriptions.
var exifSections = map[string]string{
	"ImageStructure":       "Image data structure",
	"RecOffset":            "Recording offset",
	"ImageCharacteristics": "Image data characteristics",
	"OtherTags":            "Other data",
	"ExifVersion":          "Exif and FlashPix versions",
	"ImageConfig":          "Image configuration",
	"UserInfo":             "User information",
	"RelatedFile":          "Related file",
	"DateTime":             "Date and time",
	"CaptureCond":          "Picture taking conditions",
	"GPS":                  "GPS information",
	"Interop":              "Interoperability information",
}

type exifTagInfo struct {
	id      uint16
	group   string
	name    string
	tp      string
	label   string
	section string
	desc    string
}

var exifTagTable = []exifTagInfo{
	{0x00fe, ExifImage, "NewSubfileType", "Long", "New Subfile Type", "ImageStructure",
		"A general indication of the kind of data contained in this subfile."},
	{0x0100, ExifImage, "ImageWidth", "Long", "Image Width", "ImageStructure",
		"The number of columns of image data, equal to the number of pixels per row."},
	{0x0101, ExifImage, "ImageLength", "Long", "Image Length", "ImageStructure",
		"The number of rows of image data."},
	{0x0102, ExifImage, "BitsPerSample", "Short", "Bits per Sample", "ImageStructure",
		"The number of bits per image component."},
	{0x0103, ExifImage, "Compression", "Short", "Compression", "ImageStructure",
		"The compression scheme used for the image data."},
	{0x0106, ExifImage, "PhotometricInterpretation", "Short", "Photometric Interpretation", "ImageStructure",
		"The pixel composition."},
	{0x010e, ExifImage, "ImageDescription", "Ascii", "Image Description", "OtherTags",
		"A character string giving the title of the image."},
	{0x010f, ExifImage, "Make", "Ascii", "Manufacturer", "OtherTags",
		"The manufacturer of the recording equipment."},
	{0x0110, ExifImage, "Model", "Ascii", "Model", "OtherTags",
		"The model name or model number of the equipment."},
	{0x0111, ExifImage, "StripOffsets", "Long", "Strip Offsets", "RecOffset",
		"For each strip, the byte offset of that strip."},
	{0x0112, ExifImage, "Orientation", "Short", "Orientation", "ImageStructure",
		"The image orientation viewed in terms of rows and columns."},
	{0x0115, ExifImage, "SamplesPerPixel", "Short", "Samples per Pixel", "ImageStructure",
		"The number of components per pixel."},
	{0x0116, ExifImage, "RowsPerStrip", "Long", "Rows per Strip", "RecOffset",
		"The number of rows per strip."},
	{0x0117, ExifImage, "StripByteCounts", "Long", "Strip Byte Count", "RecOffset",
		"The total number of bytes in each strip."},
	{0x011a, ExifImage, "XResolution", "Rational", "X-Resolution", "ImageStructure",
		"The number of pixels per ResolutionUnit in the image width direction."},
	{0x011b, ExifImage, "YResolution", "Rational", "Y-Resolution", "ImageStructure",
		"The number of pixels per ResolutionUnit in the image height direction."},
	{0x011c, ExifImage, "PlanarConfiguration", "Short", "Planar Configuration", "ImageStructure",
		"Indicates whether pixel components are recorded in chunky or planar format."},
	{0x0128, ExifImage, "ResolutionUnit", "Short", "Resolution Unit", "ImageStructure",
		"The unit for measuring XResolution and YResolution."},
	{0x012d, ExifImage, "TransferFunction", "Short", "Transfer Function", "ImageCharacteristics",
		"A transfer function for the image, described in tabular style."},
	{0x0131, ExifImage, "Software", "Ascii", "Software", "OtherTags",
		"The name and version of the software or firmware used to generate the image."},
	{0x0132, ExifImage, "DateTime", "Ascii", "Date and Time", "OtherTags",
		"The date and time of image creation."},
	{0x013b, ExifImage, "Artist", "Ascii", "Artist", "OtherTags",
		"The name of the camera owner, photographer or image creator."},
	{0x013e, ExifImage, "WhitePoint", "Rational", "White Point", "ImageCharacteristics",
		"The chromaticity of the white point of the image."},
	{0x013f, ExifImage, "PrimaryChromaticities", "Rational", "Primary Chromaticities", "ImageCharacteristics",
		"The chromaticity of the three primary colors of the image."},
	{0x0211, ExifImage, "YCbCrCoefficients", "Rational", "YCbCr Coefficients", "ImageCharacteristics",
		"The matrix coefficients for transformation from RGB to YCbCr image data."},
	{0x0212, ExifImage, "YCbCrSubSampling", "Short", "YCbCr Sub-Sampling", "ImageStructure",
		"The sampling ratio of chrominance components in relation to the luminance component."},
	{0x0213, ExifImage, "YCbCrPositioning", "Short", "YCbCr Positioning", "ImageStructure",
		"The position of chrominance components in relation to the luminance component."},
	{0x0214, ExifImage, "ReferenceBlackWhite", "Rational", "Reference Black/White", "ImageCharacteristics",
		"The reference black point value and reference white point value."},
	{0x8298, ExifImage, "Copyright", "Ascii", "Copyright", "OtherTags",
		"Copyright information."},

	{0x829a, ExifPhoto, "ExposureTime", "Rational", "Exposure Time", "CaptureCond",
		"Exposure time, given in seconds."},
	{0x829d, ExifPhoto, "FNumber", "Rational", "FNumber", "CaptureCond",
		"The F number."},
	{0x8822, ExifPhoto, "ExposureProgram", "Short", "Exposure Program", "CaptureCond",
		"The class of the program used by the camera to set exposure."},
	{0x8824, ExifPhoto, "SpectralSensitivity", "Ascii", "Spectral Sensitivity", "CaptureCond",
		"The spectral sensitivity of each channel of the camera used."},
	{0x8827, ExifPhoto, "ISOSpeedRatings", "Short", "ISO Speed Ratings", "CaptureCond",
		"The ISO Speed and ISO Latitude of the camera or input device."},
	{0x8828, ExifPhoto, "OECF", "Undefined", "Opto-Electoric Conversion Function", "CaptureCond",
		"The Opto-Electoric Conversion Function specified in ISO 14524."},
	{0x9000, ExifPhoto, "ExifVersion", "Undefined", "Exif Version", "ExifVersion",
		"The version of the Exif standard supported."},
	{0x9003, ExifPhoto, "DateTimeOriginal", "Ascii", "Date and Time (original)", "DateTime",
		"The date and time when the original image data was generated."},
	{0x9004, ExifPhoto, "DateTimeDigitized", "Ascii", "Date and Time (digitized)", "DateTime",
		"The date and time when the image was stored as digital data."},
	{0x9101, ExifPhoto, "ComponentsConfiguration", "Undefined", "Components Configuration", "ImageConfig",
		"Information specific to compressed data; the channels of each component."},
	{0x9102, ExifPhoto, "CompressedBitsPerPixel", "Rational", "Compressed Bits per Pixel", "ImageConfig",
		"The compression mode used for a compressed image, in unit bits per pixel."},
	{0x9201, ExifPhoto, "ShutterSpeedValue", "SRational", "Shutter speed", "CaptureCond",
		"Shutter speed, in APEX units."},
	{0x9202, ExifPhoto, "ApertureValue", "Rational", "Aperture", "CaptureCond",
		"The lens aperture, in APEX units."},
	{0x9203, ExifPhoto, "BrightnessValue", "SRational", "Brightness", "CaptureCond",
		"The value of brightness, in APEX units."},
	{0x9204, ExifPhoto, "ExposureBiasValue", "SRational", "Exposure Bias", "CaptureCond",
		"The exposure bias, in APEX units."},
	{0x9205, ExifPhoto, "MaxApertureValue", "Rational", "Max Aperture Value", "CaptureCond",
		"The smallest F number of the lens, in APEX units."},
	{0x9206, ExifPhoto, "SubjectDistance", "Rational", "Subject Distance", "CaptureCond",
		"The distance to the subject, given in meters."},
	{0x9207, ExifPhoto, "MeteringMode", "Short", "Metering Mode", "CaptureCond",
		"The metering mode."},
	{0x9208, ExifPhoto, "LightSource", "Short", "Light Source", "CaptureCond",
		"The kind of light source."},
	{0x9209, ExifPhoto, "Flash", "Short", "Flash", "CaptureCond",
		"This tag is recorded when an image is taken using a strobe light (flash)."},
	{0x920a, ExifPhoto, "FocalLength", "Rational", "Focal Length", "CaptureCond",
		"The actual focal length of the lens, in mm."},
	{0x9214, ExifPhoto, "SubjectArea", "Short", "Subject Area", "CaptureCond",
		"The location and area of the main subject in the overall scene."},
	{0x927c, ExifPhoto, "MakerNote", "Undefined", "Maker Note", "UserInfo",
		"A tag for manufacturers of Exif writers to record any desired information."},
	{0x9286, ExifPhoto, "UserComment", "Comment", "User Comment", "UserInfo",
		"A tag for Exif users to write keywords or comments on the image."},
	{0x9290, ExifPhoto, "SubSecTime", "Ascii", "Sub-seconds Time", "DateTime",
		"Fractions of seconds for the DateTime tag."},
	{0x9291, ExifPhoto, "SubSecTimeOriginal", "Ascii", "Sub-seconds Time Original", "DateTime",
		"Fractions of seconds for the DateTimeOriginal tag."},
	{0x9292, ExifPhoto, "SubSecTimeDigitized", "Ascii", "Sub-seconds Time Digitized", "DateTime",
		"Fractions of seconds for the DateTimeDigitized tag."},
	{0xa000, ExifPhoto, "FlashpixVersion", "Undefined", "FlashPix Version", "ExifVersion",
		"The FlashPix format version supported by a FPXR file."},
	{0xa001, ExifPhoto, "ColorSpace", "Short", "Color Space", "ImageCharacteristics",
		"The color space information tag."},
	{0xa002, ExifPhoto, "PixelXDimension", "Long", "Pixel X Dimension", "ImageConfig",
		"The width of the meaningful image."},
	{0xa003, ExifPhoto, "PixelYDimension", "Long", "Pixel Y Dimension", "ImageConfig",
		"The height of the meaningful image."},
	{0xa004, ExifPhoto, "RelatedSoundFile", "Ascii", "Related Sound File", "RelatedFile",
		"The name of an audio file related to the image data."},
	{0xa20b, ExifPhoto, "FlashEnergy", "Rational", "Flash Energy", "CaptureCond",
		"The strobe energy at the time the image is captured, in BCPS."},
	{0xa20e, ExifPhoto, "FocalPlaneXResolution", "Rational", "Focal Plane X-Resolution", "CaptureCond",
		"The number of pixels in the image width direction per FocalPlaneResolutionUnit."},
	{0xa20f, ExifPhoto, "FocalPlaneYResolution", "Rational", "Focal Plane Y-Resolution", "CaptureCond",
		"The number of pixels in the image height direction per FocalPlaneResolutionUnit."},
	{0xa210, ExifPhoto, "FocalPlaneResolutionUnit", "Short", "Focal Plane Resolution Unit", "CaptureCond",
		"The unit for measuring FocalPlaneXResolution and FocalPlaneYResolution."},
	{0xa214, ExifPhoto, "SubjectLocation", "Short", "Subject Location", "CaptureCond",
		"The location of the main subject in the scene."},
	{0xa215, ExifPhoto, "ExposureIndex", "Rational", "Exposure Index", "CaptureCond",
		"The exposure index selected on the camera or input device."},
	{0xa217, ExifPhoto, "SensingMethod", "Short", "Sensing Method", "CaptureCond",
		"The image sensor type on the camera or input device."},
	{0xa300, ExifPhoto, "FileSource", "Undefined", "File Source", "CaptureCond",
		"The image source."},
	{0xa301, ExifPhoto, "SceneType", "Undefined", "Scene Type", "CaptureCond",
		"The type of scene."},
	{0xa401, ExifPhoto, "CustomRendered", "Short", "Custom Rendered", "CaptureCond",
		"The use of special processing on image data."},
	{0xa402, ExifPhoto, "ExposureMode", "Short", "Exposure Mode", "CaptureCond",
		"The exposure mode set when the image was shot."},
	{0xa403, ExifPhoto, "WhiteBalance", "Short", "White Balance", "CaptureCond",
		"The white balance mode set when the image was shot."},
	{0xa404, ExifPhoto, "DigitalZoomRatio", "Rational", "Digital Zoom Ratio", "CaptureCond",
		"The digital zoom ratio when the image was shot."},
	{0xa405, ExifPhoto, "FocalLengthIn35mmFilm", "Short", "Focal Length In 35mm Film", "CaptureCond",
		"The equivalent focal length assuming a 35mm film camera, in mm."},
	{0xa406, ExifPhoto, "SceneCaptureType", "Short", "Scene Capture Type", "CaptureCond",
		"The type of scene that was shot."},
	{0xa407, ExifPhoto, "GainControl", "Short", "Gain Control", "CaptureCond",
		"The degree of overall image gain adjustment."},
	{0xa408, ExifPhoto, "Contrast", "Short", "Contrast", "CaptureCond",
		"The direction of contrast processing applied by the camera."},
	{0xa409, ExifPhoto, "Saturation", "Short", "Saturation", "CaptureCond",
		"The direction of saturation processing applied by the camera."},
	{0xa40a, ExifPhoto, "Sharpness", "Short", "Sharpness", "CaptureCond",
		"The direction of sharpness processing applied by the camera."},
	{0xa40c, ExifPhoto, "SubjectDistanceRange", "Short", "Subject Distance Range", "CaptureCond",
		"The distance to the subject."},
	{0xa420, ExifPhoto, "ImageUniqueID", "Ascii", "Image Unique ID", "OtherTags",
		"An identifier assigned uniquely to each image."},
	{0xa433, ExifPhoto, "LensMake", "Ascii", "Lens Make", "CaptureCond",
		"The lens manufacturer."},
	{0xa434, ExifPhoto, "LensModel", "Ascii", "Lens Model", "CaptureCond",
		"The lens's model name and model number."},

	{0x0000, ExifGPS, "GPSVersionID", "Byte", "GPS Version ID", "GPS",
		"The version of the GPS IFD, given as four bytes."},
	{0x0001, ExifGPS, "GPSLatitudeRef", "Ascii", "GPS Latitude Reference", "GPS",
		"Indicates whether the latitude is north or south latitude."},
	{0x0002, ExifGPS, "GPSLatitude", "Rational", "GPS Latitude", "GPS",
		"The latitude, expressed as degrees, minutes and seconds."},
	{0x0003, ExifGPS, "GPSLongitudeRef", "Ascii", "GPS Longitude Reference", "GPS",
		"Indicates whether the longitude is east or west longitude."},
	{0x0004, ExifGPS, "GPSLongitude", "Rational", "GPS Longitude", "GPS",
		"The longitude, expressed as degrees, minutes and seconds."},
	{0x0005, ExifGPS, "GPSAltitudeRef", "Byte", "GPS Altitude Reference", "GPS",
		"The altitude used as the reference altitude."},
	{0x0006, ExifGPS, "GPSAltitude", "Rational", "GPS Altitude", "GPS",
		"The altitude based on the reference in GPSAltitudeRef, in meters."},
	{0x0007, ExifGPS, "GPSTimeStamp", "Rational", "GPS Time Stamp", "GPS",
		"The time as UTC, expressed as hour, minute and second."},
	{0x0008, ExifGPS, "GPSSatellites", "Ascii", "GPS Satellites", "GPS",
		"The GPS satellites used for measurements."},
	{0x0009, ExifGPS, "GPSStatus", "Ascii", "GPS Status", "GPS",
		"The status of the GPS receiver when the image is recorded."},
	{0x000a, ExifGPS, "GPSMeasureMode", "Ascii", "GPS Measure Mode", "GPS",
		"The GPS measurement mode."},
	{0x000b, ExifGPS, "GPSDOP", "Rational", "GPS Data Degree of Precision", "GPS",
		"The GPS DOP (data degree of precision)."},
	{0x000c, ExifGPS, "GPSSpeedRef", "Ascii", "GPS Speed Reference", "GPS",
		"The unit used to express the GPS receiver speed of movement."},
	{0x000d, ExifGPS, "GPSSpeed", "Rational", "GPS Speed", "GPS",
		"The speed of GPS receiver movement."},
	{0x0010, ExifGPS, "GPSImgDirectionRef", "Ascii", "GPS Image Direction Reference", "GPS",
		"The reference for giving the direction of the image when it is captured."},
	{0x0011, ExifGPS, "GPSImgDirection", "Rational", "GPS Image Direction", "GPS",
		"The direction of the image when it was captured."},
	{0x0012, ExifGPS, "GPSMapDatum", "Ascii", "GPS Map Datum", "GPS",
		"The geodetic survey data used by the GPS receiver."},
	{0x001b, ExifGPS, "GPSProcessingMethod", "Comment", "GPS Processing Method", "GPS",
		"The name of the method used for location finding."},
	{0x001d, ExifGPS, "GPSDateStamp", "Ascii", "GPS Date Stamp", "GPS",
		"The date and time information relative to UTC, as YYYY:MM:DD."},

	{0x0001, ExifIop, "InteroperabilityIndex", "Ascii", "Interoperability Index", "Interop",
		"The identification of the interoperability rule."},
	{0x0002, ExifIop, "InteroperabilityVersion", "Undefined", "Interoperability Version", "Interop",
		"The interoperability version."},
}

func exifDescriptors() []*Descriptor {
	res := make([]*Descriptor, 0, len(exifTagTable))
	for _, info := range exifTagTable {
		res = append(res, &Descriptor{
			Key:                Key{Namespace: Exif, Group: info.group, Name: info.name},
			Kind:               exifKind(info.tp, info.name),
			Type:               info.tp,
			Name:               info.name,
			Label:              info.label,
			Description:        info.desc,
			Section:            info.section,
			SectionDescription: exifSections[info.section],
			ID:                 info.id,
			Known:              true,
		})
	}
	return res
}

// exifKind determines the value kind for a TIFF type name.
func exifKind(tp, name string) ValueKind {
	switch tp {
	case "Ascii":
		switch name {
		case "DateTime", "DateTimeOriginal", "DateTimeDigitized", "GPSDateStamp":
			return KindDate
		}
		return KindText
	case "Comment":
		return KindText
	case "Rational", "SRational":
		return KindRational
	case "Byte", "SByte", "Short", "SShort", "Long", "SLong", "Float", "Double":
		return KindNumber
	case "Undefined":
		return KindBytes
	default:
		return KindUnknown
	}
}
