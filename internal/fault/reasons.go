package fault

// Reason is a machine-readable fault code.
type Reason string

// Validation
const (
	VAL0001E_INVALID_VALUE Reason = "VAL0001E_INVALID_VALUE"
)

// Element groups
const (
	IVT0100E_GROUP_NOT_FOUND           Reason = "IVT0100E_GROUP_NOT_FOUND"
	IVT0103E_GROUP_NAME_ALREADY_IN_USE Reason = "IVT0103E_GROUP_NAME_ALREADY_IN_USE"
	IVT0104E_GROUP_NOT_EMPTY           Reason = "IVT0104E_GROUP_NOT_EMPTY"
)

// Images
const (
	IVT0200E_IMAGE_NOT_FOUND      Reason = "IVT0200E_IMAGE_NOT_FOUND"
	IVT0202E_IMAGE_ALREADY_EXISTS Reason = "IVT0202E_IMAGE_ALREADY_EXISTS"
	IVT0204E_IMAGE_IN_USE         Reason = "IVT0204E_IMAGE_IN_USE"
)

// Elements
const (
	IVT0300E_ELEMENT_NOT_FOUND              Reason = "IVT0300E_ELEMENT_NOT_FOUND"
	IVT0303E_ELEMENT_ACTIVE                 Reason = "IVT0303E_ELEMENT_ACTIVE"
	IVT0307E_ELEMENT_NAME_ALREADY_IN_USE    Reason = "IVT0307E_ELEMENT_NAME_ALREADY_IN_USE"
	IVT0341E_ELEMENT_IMAGE_ACTIVE           Reason = "IVT0341E_ELEMENT_IMAGE_ACTIVE"
	IVT0342E_ELEMENT_IMAGE_AMBIGUOUS_ACTIVE Reason = "IVT0342E_ELEMENT_IMAGE_AMBIGUOUS_ACTIVE"
	IVT0350E_IFP_NOT_FOUND                  Reason = "IVT0350E_IFP_NOT_FOUND"
	IVT0351E_IFC_NOT_FOUND                  Reason = "IVT0351E_IFC_NOT_FOUND"
	IVT0360E_IFL_NOT_FOUND                  Reason = "IVT0360E_IFL_NOT_FOUND"
)

// Element roles
const (
	IVT0400E_ELEMENT_ROLE_NOT_FOUND Reason = "IVT0400E_ELEMENT_ROLE_NOT_FOUND"
	IVT0402E_ROLE_IN_USE            Reason = "IVT0402E_ROLE_IN_USE"
)

// Facilities
const (
	IVT0600E_FACILITY_NOT_FOUND           Reason = "IVT0600E_FACILITY_NOT_FOUND"
	IVT0601E_FACILITY_NAME_ALREADY_IN_USE Reason = "IVT0601E_FACILITY_NAME_ALREADY_IN_USE"
	IVT0602E_FACILITY_NOT_EMPTY           Reason = "IVT0602E_FACILITY_NOT_EMPTY"
)

// Platforms
const (
	IVT0900E_PLATFORM_NOT_FOUND           Reason = "IVT0900E_PLATFORM_NOT_FOUND"
	IVT0902E_PLATFORM_NAME_ALREADY_IN_USE Reason = "IVT0902E_PLATFORM_NAME_ALREADY_IN_USE"
	IVT0903E_PLATFORM_IN_USE              Reason = "IVT0903E_PLATFORM_IN_USE"
)

// DNS
const (
	IVT0950E_DNS_ZONE_NOT_FOUND           Reason = "IVT0950E_DNS_ZONE_NOT_FOUND"
	IVT0951E_DNS_ZONE_ALREADY_EXISTS      Reason = "IVT0951E_DNS_ZONE_ALREADY_EXISTS"
	IVT0952E_DNS_ZONE_NOT_EMPTY           Reason = "IVT0952E_DNS_ZONE_NOT_EMPTY"
	IVT0953E_DNS_RECORDSET_NOT_FOUND      Reason = "IVT0953E_DNS_RECORDSET_NOT_FOUND"
	IVT0954E_DNS_NAME_OUTSIDE_ZONE        Reason = "IVT0954E_DNS_NAME_OUTSIDE_ZONE"
	IVT0955E_DNS_RECORDSET_ALREADY_EXISTS Reason = "IVT0955E_DNS_RECORDSET_ALREADY_EXISTS"
	IVT0956E_DNS_RECORDSET_OTHER_ELEMENT  Reason = "IVT0956E_DNS_RECORDSET_OTHER_ELEMENT"
)
