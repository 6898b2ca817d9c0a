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

import "strings"

// xmpSchemaName maps namespace URIs to human readable schema names.
var xmpSchemaName = map[string]string{
	"http://purl.org/dc/elements/1.1/":            "Dublin Core schema",
	"http://ns.adobe.com/xap/1.0/":                "XMP Basic schema",
	"http://ns.adobe.com/xap/1.0/rights/":         "XMP Rights Management schema",
	"http://ns.adobe.com/xap/1.0/mm/":             "XMP Media Management schema",
	"http://ns.adobe.com/photoshop/1.0/":          "Adobe Photoshop schema",
	"http://ns.adobe.com/pdf/1.3/":                "Adobe PDF schema",
	"http://ns.adobe.com/tiff/1.0/":               "EXIF schema for TIFF properties",
	"http://ns.adobe.com/exif/1.0/":               "EXIF schema for EXIF-specific properties",
	"http://ns.adobe.com/exif/1.0/aux/":           "EXIF schema for additional EXIF properties",
	"http://iptc.org/std/Iptc4xmpCore/1.0/xmlns/": "IPTC Core schema",
}

type xmpPropertyInfo struct {
	name  string
	tp    string
	title string
	desc  string
}

// xmpPropertyTable lists the known properties, by schema prefix.
var xmpPropertyTable = map[string][]xmpPropertyInfo{
	"dc": {
		{"contributor", "bag ProperName", "Contributor",
			"Contributors to the resource (other than the authors)."},
		{"coverage", "Text", "Coverage",
			"The extent or scope of the resource."},
		{"creator", "seq ProperName", "Creator",
			"The authors of the resource, listed in order of precedence, if significant."},
		{"date", "seq Date", "Date",
			"Points or periods of time associated with events in the life cycle of the resource."},
		{"description", "Lang Alt", "Description",
			"A textual description of the content of the resource."},
		{"format", "MIMEType", "Format",
			"The media type of the resource."},
		{"identifier", "Text", "Identifier",
			"Unique identifier of the resource."},
		{"language", "bag Locale", "Language",
			"An unordered array specifying the languages used in the resource."},
		{"publisher", "bag ProperName", "Publisher",
			"Publishers of the resource."},
		{"relation", "bag Text", "Relation",
			"Relationships to other documents."},
		{"rights", "Lang Alt", "Rights",
			"Informal rights statement, selected by language."},
		{"source", "Text", "Source",
			"Unique identifier of the work from which this resource was derived."},
		{"subject", "bag Text", "Subject",
			"Descriptive phrases or keywords that specify the content of the resource."},
		{"title", "Lang Alt", "Title",
			"The title of the document, or the name given to the resource."},
		{"type", "bag Text", "Type",
			"The nature or genre of the resource."},
	},
	"xmp": {
		{"Advisory", "bag XPath", "Advisory",
			"Properties that were edited outside the authoring application."},
		{"BaseURL", "URL", "Base URL",
			"The base URL for relative URLs in the document content."},
		{"CreateDate", "Date", "Create Date",
			"The date and time the resource was originally created."},
		{"CreatorTool", "AgentName", "Creator Tool",
			"The name of the first known tool used to create the resource."},
		{"Identifier", "bag Text", "Identifier",
			"An unordered array of text strings that unambiguously identify the resource."},
		{"Label", "Text", "Label",
			"A word or short phrase that identifies a document as a member of a user-defined collection."},
		{"MetadataDate", "Date", "Metadata Date",
			"The date and time that any metadata for this resource was last changed."},
		{"ModifyDate", "Date", "Modify Date",
			"The date and time the resource was last modified."},
		{"Nickname", "Text", "Nickname",
			"A short informal name for the resource."},
		{"Rating", "Real", "Rating",
			"A user-assigned rating: -1 (rejected), 0 (unrated) or a rating in the range (0, 5]."},
	},
	"xmpRights": {
		{"Certificate", "URL", "Certificate",
			"Online rights management certificate."},
		{"Marked", "Boolean", "Marked",
			"Indicates that this is a rights-managed resource."},
		{"Owner", "bag ProperName", "Owner",
			"The legal owners of the resource."},
		{"UsageTerms", "Lang Alt", "Usage Terms",
			"Text instructions on how the resource can be legally used."},
		{"WebStatement", "URL", "Web Statement",
			"The location of a web page describing the owner and/or rights statement."},
	},
	"xmpMM": {
		{"DocumentID", "URI", "Document ID",
			"The common identifier for all versions and renditions of a document."},
		{"InstanceID", "URI", "Instance ID",
			"An identifier for a specific incarnation of a document."},
		{"OriginalDocumentID", "URI", "Original Document ID",
			"The common identifier for the original resource from which the current resource is derived."},
		{"RenditionClass", "RenditionClass", "Rendition Class",
			"The rendition class name for this resource."},
		{"RenditionParams", "Text", "Rendition Parameters",
			"Additional rendition parameters."},
	},
	"photoshop": {
		{"AuthorsPosition", "Text", "Authors Position",
			"By-line title."},
		{"CaptionWriter", "ProperName", "Caption Writer",
			"Writer/editor."},
		{"Category", "Text", "Category",
			"Category.  Limited to 3 7-bit ASCII characters."},
		{"City", "Text", "City",
			"City."},
		{"Country", "Text", "Country",
			"Country/primary location."},
		{"Credit", "Text", "Credit",
			"Credit."},
		{"DateCreated", "Date", "Date Created",
			"The date the intellectual content of the document was created."},
		{"Headline", "Text", "Headline",
			"Headline."},
		{"Instructions", "Text", "Instructions",
			"Special instructions."},
		{"Source", "Text", "Source",
			"Source."},
		{"State", "Text", "State",
			"Province/state."},
		{"SupplementalCategories", "bag Text", "Supplemental Categories",
			"Supplemental category."},
		{"TransmissionReference", "Text", "Transmission Reference",
			"Original transmission reference."},
		{"Urgency", "Integer", "Urgency",
			"Urgency.  Valid range is 1-8."},
	},
	"pdf": {
		{"Keywords", "Text", "Keywords",
			"Keywords."},
		{"PDFVersion", "Text", "PDF Version",
			"The PDF file version (for example: 1.0, 1.3, and so on)."},
		{"Producer", "AgentName", "Producer",
			"The name of the tool that created the PDF document."},
	},
	"tiff": {
		{"ImageWidth", "Integer", "Image Width",
			"Image width in pixels."},
		{"ImageLength", "Integer", "Image Length",
			"Image height in pixels."},
		{"Orientation", "Integer", "Orientation",
			"Orientation, 1-8."},
		{"XResolution", "Rational", "X Resolution",
			"Horizontal resolution in pixels per unit."},
		{"YResolution", "Rational", "Y Resolution",
			"Vertical resolution in pixels per unit."},
		{"ResolutionUnit", "Integer", "Resolution Unit",
			"Unit used for XResolution and YResolution: 2 = inches, 3 = centimeters."},
		{"DateTime", "Date", "Date and Time",
			"Date and time of image creation."},
		{"ImageDescription", "Lang Alt", "Image Description",
			"Title of the image."},
		{"Make", "ProperName", "Make",
			"Manufacturer of recording equipment."},
		{"Model", "ProperName", "Model",
			"Model name or number of equipment."},
		{"Software", "AgentName", "Software",
			"Software or firmware used to generate the image."},
		{"Artist", "ProperName", "Artist",
			"Camera owner, photographer or image creator."},
		{"Copyright", "Lang Alt", "Copyright",
			"Copyright information."},
	},
	"exif": {
		{"ExifVersion", "Text", "Exif Version",
			"EXIF version number."},
		{"ColorSpace", "Integer", "Color Space",
			"Color space information."},
		{"PixelXDimension", "Integer", "Pixel X Dimension",
			"Valid image width, in pixels."},
		{"PixelYDimension", "Integer", "Pixel Y Dimension",
			"Valid image height, in pixels."},
		{"UserComment", "Lang Alt", "User Comment",
			"Comments from user."},
		{"DateTimeOriginal", "Date", "Date and Time Original",
			"Date and time when original image was generated."},
		{"DateTimeDigitized", "Date", "Date and Time Digitized",
			"Date and time when image was stored as digital data."},
		{"ExposureTime", "Rational", "Exposure Time",
			"Exposure time in seconds."},
		{"FNumber", "Rational", "F Number",
			"F number."},
		{"ISOSpeedRatings", "seq Integer", "ISO Speed Ratings",
			"ISO Speed and ISO Latitude of the input device."},
		{"FocalLength", "Rational", "Focal Length",
			"Focal length of the lens, in millimeters."},
		{"GPSLatitude", "GPSCoordinate", "GPS Latitude",
			"GPS latitude location."},
		{"GPSLongitude", "GPSCoordinate", "GPS Longitude",
			"GPS longitude location."},
	},
	"aux": {
		{"Lens", "Text", "Lens",
			"A description of the lens used to take the photograph."},
		{"SerialNumber", "Text", "Serial Number",
			"The serial number of the camera or camera body used to take the photograph."},
	},
	"iptc": {
		{"CountryCode", "Text", "Country Code",
			"Code of the country the content is focussing on."},
		{"IntellectualGenre", "Text", "Intellectual Genre",
			"Describes the nature, intellectual or journalistic characteristic of an item."},
		{"Location", "Text", "Location",
			"Name of a location the content is focussing on."},
		{"Scene", "bag Text", "Scene Code",
			"Describes the scene of a photo content."},
		{"SubjectCode", "bag Text", "Subject Code",
			"Specifies one or more subjects from the IPTC Subject-NewsCodes taxonomy."},
		{"CreatorContactInfo/iptc:CiAdrCity", "Text", "Contact Info-City",
			"The contact information city part."},
		{"CreatorContactInfo/iptc:CiAdrCtry", "Text", "Contact Info-Country",
			"The contact information country part."},
		{"CreatorContactInfo/iptc:CiAdrExtadr", "Text", "Contact Info-Address",
			"The contact information address part."},
		{"CreatorContactInfo/iptc:CiAdrPcode", "Text", "Contact Info-Postal Code",
			"The contact information part denoting the local postal code."},
		{"CreatorContactInfo/iptc:CiAdrRegion", "Text", "Contact Info-State/Province",
			"The contact information part denoting regional information."},
		{"CreatorContactInfo/iptc:CiEmailWork", "Text", "Contact Info-Email",
			"The work email address(es) for the creator of the object."},
		{"CreatorContactInfo/iptc:CiTelWork", "Text", "Contact Info-Phone",
			"The work phone number(s) for the creator of the object."},
		{"CreatorContactInfo/iptc:CiUrlWork", "Text", "Contact Info-Web URL",
			"The work web URL(s) for the creator of the object."},
	},
}

func xmpDescriptors() []*Descriptor {
	var res []*Descriptor
	for prefix, props := range xmpPropertyTable {
		ns, ok := NamespaceURI(prefix)
		if !ok {
			panic("unknown XMP prefix " + prefix)
		}
		for _, info := range props {
			res = append(res, &Descriptor{
				Key:                Key{Namespace: Xmp, Group: prefix, Name: info.name},
				Kind:               xmpKind(info.tp),
				Type:               info.tp,
				Name:               info.name,
				Label:              info.title,
				Description:        info.desc,
				Section:            prefix,
				SectionDescription: xmpSchemaName[ns],
				Known:              true,
			})
		}
	}
	return res
}

// xmpKind determines the value kind for an XMP value type.  Both the XMP
// type names ("bag Text", "Lang Alt") and the engine type names ("XmpBag",
// "LangAlt") are understood.
func xmpKind(tp string) ValueKind {
	switch {
	case tp == "Lang Alt" || tp == "LangAlt":
		return KindLangAlt
	case strings.HasPrefix(tp, "bag "), strings.HasPrefix(tp, "seq "), strings.HasPrefix(tp, "alt "):
		return KindArray
	case tp == "XmpBag" || tp == "XmpSeq" || tp == "XmpAlt":
		return KindArray
	case tp == "Date":
		return KindDate
	case tp == "Integer" || tp == "Real":
		return KindNumber
	case tp == "Rational":
		return KindRational
	case tp == "":
		return KindUnknown
	default:
		return KindText
	}
}

// Engine type names for XMP values.
const (
	XmpText    = "XmpText"
	XmpBag     = "XmpBag"
	XmpSeq     = "XmpSeq"
	XmpAlt     = "XmpAlt"
	XmpLangAlt = "LangAlt"
)

// xmpEngineType maps an XMP value type like "seq ProperName" to the type
// name used by the metadata engine.
func xmpEngineType(tp string) string {
	switch {
	case tp == "Lang Alt" || tp == XmpLangAlt:
		return XmpLangAlt
	case strings.HasPrefix(tp, "bag ") || tp == XmpBag:
		return XmpBag
	case strings.HasPrefix(tp, "seq ") || tp == XmpSeq:
		return XmpSeq
	case strings.HasPrefix(tp, "alt ") || tp == XmpAlt:
		return XmpAlt
	default:
		return XmpText
	}
}
