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

// IPTC record names.
const (
	iptcEnvelope     = "Envelope"
	iptcApplication2 = "Application2"
)

// IPTC record numbers.
const (
	IptcEnvelopeRecord     uint16 = 1
	IptcApplication2Record uint16 = 2
)

var iptcRecordDescriptions = map[string]string{
	iptcEnvelope:     "IIM envelope record",
	iptcApplication2: "IIM application record 2",
}

func iptcRecordNumber(name string) (uint16, bool) {
	switch name {
	case iptcEnvelope:
		return IptcEnvelopeRecord, true
	case iptcApplication2:
		return IptcApplication2Record, true
	}
	return parseHexTag(name)
}

func iptcRecordName(record uint16) string {
	switch record {
	case IptcEnvelopeRecord:
		return iptcEnvelope
	case IptcApplication2Record:
		return iptcApplication2
	}
	return formatHexTag(record)
}

type iptcDatasetInfo struct {
	dataset    uint16
	name       string
	tp         string
	repeatable bool
	title      string
	psName     string
	desc       string
}

var iptcEnvelopeTable = []iptcDatasetInfo{
	{0, "ModelVersion", "Short", false, "Model Version", "",
		"A binary number identifying the version of the Information Interchange Model."},
	{5, "Destination", "String", true, "Destination", "",
		"Routing information, not used by the provider."},
	{20, "FileFormat", "Short", false, "File Format", "",
		"A binary number representing the file format."},
	{22, "FileVersion", "Short", false, "File Version", "",
		"A binary number representing the particular version of the File Format."},
	{30, "ServiceId", "String", false, "Service ID", "",
		"Identifies the provider and product."},
	{40, "EnvelopeNumber", "Digits", false, "Envelope Number", "",
		"The characters form a number that will be unique for the date specified."},
	{50, "ProductId", "String", true, "Product ID", "",
		"Allows a provider to identify subsets of its overall service."},
	{60, "EnvelopePriority", "Digits", false, "Envelope Priority", "",
		"Specifies the envelope handling priority."},
	{70, "DateSent", "Date", false, "Date Sent", "",
		"The year, month and day the service sent the material."},
	{80, "TimeSent", "Time", false, "Time Sent", "",
		"The time the service sent the material."},
	{90, "CharacterSet", "Undefined", false, "Character Set", "",
		"One or more control functions used for the announcement of coded character sets."},
	{100, "UNO", "String", false, "Unique Name Object", "",
		"The eternal, globally unique identification for objects."},
	{120, "ARMId", "Short", false, "ARM Identifier", "",
		"The Abstract Relationship Method identifier."},
	{122, "ARMVersion", "Short", false, "ARM Version", "",
		"The particular version of the Abstract Relationship Method."},
}

var iptcApplication2Table = []iptcDatasetInfo{
	{0, "RecordVersion", "Short", false, "Record Version", "",
		"A binary number identifying the version of the Information Interchange Model, Part II."},
	{3, "ObjectType", "String", false, "Object Type", "",
		"The object type reference."},
	{4, "ObjectAttribute", "String", true, "Object Attribute", "",
		"The object attribute reference."},
	{5, "ObjectName", "String", false, "Object Name", "Document Title",
		"A shorthand reference for the object."},
	{7, "EditStatus", "String", false, "Edit Status", "",
		"Status of the object data, according to the practice of the provider."},
	{8, "EditorialUpdate", "String", false, "Editorial Update", "",
		"Indicates the type of update that this object provides."},
	{10, "Urgency", "Digits", false, "Urgency", "Urgency",
		"Specifies the editorial urgency of content."},
	{12, "Subject", "String", true, "Subject", "",
		"The subject reference."},
	{15, "Category", "String", false, "Category", "Category",
		"Identifies the subject of the object data in the opinion of the provider."},
	{20, "SuppCategory", "String", true, "Supplemental Category", "Supplemental Categories",
		"Supplemental categories further refine the subject of the object data."},
	{22, "FixtureId", "String", false, "Fixture Id", "",
		"Identifies object data that recurs often and predictably."},
	{25, "Keywords", "String", true, "Keywords", "Keywords",
		"Used to indicate specific information retrieval words."},
	{26, "LocationCode", "String", true, "Location Code", "",
		"Indicates the code of a country/geographical location referenced by the content."},
	{27, "LocationName", "String", true, "Location Name", "",
		"Provides a full, publishable name of a country/geographical location."},
	{30, "ReleaseDate", "Date", false, "Release Date", "",
		"The earliest date the provider intends the object to be used."},
	{35, "ReleaseTime", "Time", false, "Release Time", "",
		"The earliest time the provider intends the object to be used."},
	{37, "ExpirationDate", "Date", false, "Expiration Date", "",
		"The latest date the provider or owner intends the object data to be used."},
	{38, "ExpirationTime", "Time", false, "Expiration Time", "",
		"The latest time the provider or owner intends the object data to be used."},
	{40, "SpecialInstructions", "String", false, "Special Instructions", "Instructions",
		"Other editorial instructions concerning the use of the object data."},
	{42, "ActionAdvised", "String", false, "Action Advised", "",
		"Indicates the type of action that this object provides to a previous object."},
	{45, "ReferenceService", "String", true, "Reference Service", "",
		"Identifies the Service Identifier of a prior envelope to which the current object refers."},
	{47, "ReferenceDate", "Date", true, "Reference Date", "",
		"Identifies the date of a prior envelope to which the current object refers."},
	{50, "ReferenceNumber", "Digits", true, "Reference Number", "",
		"Identifies the Envelope Number of a prior envelope to which the current object refers."},
	{55, "DateCreated", "Date", false, "Date Created", "Date Created",
		"The date the intellectual content of the object data was created."},
	{60, "TimeCreated", "Time", false, "Time Created", "",
		"The time the intellectual content of the object data was created."},
	{62, "DigitizationDate", "Date", false, "Digital Creation Date", "",
		"The date the digital representation of the object data was created."},
	{63, "DigitizationTime", "Time", false, "Digital Creation Time", "",
		"The time the digital representation of the object data was created."},
	{65, "Program", "String", false, "Program", "",
		"The type of program used to originate the object data."},
	{70, "ProgramVersion", "String", false, "Program Version", "",
		"The version of the program mentioned in Program."},
	{75, "ObjectCycle", "String", false, "Object Cycle", "",
		"The editorial cycle of the object data: a (morning), p (evening) or b (both)."},
	{80, "Byline", "String", true, "By-line", "Author",
		"The name of the creator of the object data."},
	{85, "BylineTitle", "String", true, "By-line Title", "Authors Position",
		"The title of the creator or creators of the object data."},
	{90, "City", "String", false, "City", "City",
		"The name of the city of origin of the object data."},
	{92, "SubLocation", "String", false, "Sub-location", "",
		"The location within a city from which the object data originates."},
	{95, "ProvinceState", "String", false, "Province/State", "State/Province",
		"The name of the subregion of a country of origin of the object data."},
	{100, "CountryCode", "String", false, "Country Code", "",
		"The code of the country/primary location where the object data was created."},
	{101, "CountryName", "String", false, "Country Name", "Country",
		"The full, publishable name of the country/primary location."},
	{103, "TransmissionReference", "String", false, "Transmission Reference", "Transmission Reference",
		"A code representing the location of original transmission."},
	{105, "Headline", "String", false, "Headline", "Headline",
		"A publishable entry providing a synopsis of the contents of the object data."},
	{110, "Credit", "String", false, "Credit", "Credit",
		"Identifies the provider of the object data, not necessarily the owner/creator."},
	{115, "Source", "String", false, "Source", "Source",
		"The original owner of the intellectual content of the object data."},
	{116, "Copyright", "String", false, "Copyright", "Copyright notice",
		"Contains any necessary copyright notice."},
	{118, "Contact", "String", true, "Contact", "",
		"The person or organisation which can provide further background information."},
	{120, "Caption", "String", false, "Caption", "Description",
		"A textual description of the object data."},
	{122, "Writer", "String", true, "Writer", "Description writer",
		"The name of the person involved in writing, editing or correcting the description."},
	{125, "RasterizedCaption", "Undefined", false, "Rasterized Caption", "",
		"The rasterized object data description."},
	{130, "ImageType", "String", false, "Image Type", "",
		"Indicates the color components of an image."},
	{131, "ImageOrientation", "String", false, "Image Orientation", "",
		"Indicates the layout of an image: P (portrait), L (landscape) or S (square)."},
	{135, "Language", "String", false, "Language", "",
		"The major national language of the object, as an ISO 639 code."},
	{150, "AudioType", "String", false, "Audio Type", "",
		"The number of channels and the type of audio in the object data."},
	{151, "AudioRate", "Digits", false, "Audio Rate", "",
		"The sampling rate in Hertz."},
	{152, "AudioResolution", "Digits", false, "Audio Resolution", "",
		"The number of bits in each audio sample."},
	{153, "AudioDuration", "Digits", false, "Audio Duration", "",
		"The running time of an audio object data, as HHMMSS."},
	{154, "AudioOutcue", "String", false, "Audio Outcue", "",
		"The content of the end of an audio object data."},
	{200, "PreviewFormat", "Short", false, "Preview Format", "",
		"A binary number representing the file format of the object data preview."},
	{201, "PreviewVersion", "Short", false, "Preview Version", "",
		"A binary number representing the version of the object data preview file format."},
	{202, "Preview", "Undefined", false, "Preview Data", "",
		"The object data preview."},
}

func iptcDescriptors() []*Descriptor {
	var res []*Descriptor
	add := func(record uint16, name string, table []iptcDatasetInfo) {
		for _, info := range table {
			res = append(res, &Descriptor{
				Key:                Key{Namespace: Iptc, Group: name, Name: info.name},
				Kind:               iptcKind(info.tp),
				Type:               info.tp,
				Name:               info.name,
				Label:              info.title,
				Description:        info.desc,
				Section:            name,
				SectionDescription: iptcRecordDescriptions[name],
				Repeatable:         info.repeatable,
				PhotoshopName:      info.psName,
				ID:                 info.dataset,
				Record:             record,
				Known:              true,
			})
		}
	}
	add(IptcEnvelopeRecord, iptcEnvelope, iptcEnvelopeTable)
	add(IptcApplication2Record, iptcApplication2, iptcApplication2Table)
	return res
}

func iptcKind(tp string) ValueKind {
	switch tp {
	case "String", "Digits":
		return KindText
	case "Date", "Time":
		return KindDate
	case "Short":
		return KindNumber
	case "Undefined":
		return KindBytes
	default:
		return KindUnknown
	}
}
