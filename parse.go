package alfroster

import (
	"regexp"
	"strings"
)

// headerRe matches the line that opens a facility record:
//
//	TOWN (COUNTY) - ZIPCODE ALF [services]
//
// The trailing free text, if any, seeds the record's services list.
var headerRe = regexp.MustCompile(`^([A-Z][A-Z'\s]+?)\s*\(([A-Z\s]+)\)\s*-\s*(\d{5})\s+ALF\s*(.*)?$`)

// Body-line patterns, compiled once at startup.
var (
	bedsRe      = regexp.MustCompile(`Total\s+Lic\s*-\s*(\d+)`)
	licenseRe   = regexp.MustCompile(`(ALF\d{3})`)
	phoneRe     = regexp.MustCompile(`\((\d{3})\)\s*(\d{3})-(\d{4})`)
	faxRe       = regexp.MustCompile(`FAX:\s*\((\d{3})\)\s*(\d{3})-(\d{4})`)
	adminRe     = regexp.MustCompile(`(?i)^([^,]+),\s*(ADMINISTRATOR|PROVISIONAL ADM)`)
	addrDigitRe = regexp.MustCompile(`(?i)^\d+\s+\w+|BOX\s+\d+`)
	addrWordRe  = regexp.MustCompile(`(?i)STREET|AVENUE|AVE|DRIVE|DR|ROAD|RD|LANE|LN|COURT|CT|CIRCLE|PLAZA|BLVD|WAY|PKWY`)
	pageNumRe   = regexp.MustCompile(`^\d+$`)
)

// serviceKeywords mark body lines that carry service tags on their own.
var serviceKeywords = []string{"AGED/DISABLED", "ALZHEIMER", "MEMORY CARE", "COMPLEX NURSING"}

// bodyRule classifies one body line. Rules are evaluated in a fixed
// priority order; the first rule whose match succeeds consumes the line
// and applies its effect, so precedence between ambiguous lines is
// resolved by position in bodyRules.
type bodyRule struct {
	name  string
	match func(line string, f *Facility) bool
	apply func(line string, f *Facility)
}

// bodyRules is the full classification cascade for record body lines.
var bodyRules = []bodyRule{
	{
		name:  "banner",
		match: isBannerLine,
		apply: func(string, *Facility) {},
	},
	{
		name:  "beds",
		match: func(line string, _ *Facility) bool { return bedsRe.MatchString(line) },
		apply: applyBeds,
	},
	{
		name: "license",
		match: func(line string, f *Facility) bool {
			return f.LicenseNumber == "" && licenseRe.MatchString(line)
		},
		apply: applyLicense,
	},
	{
		name: "phone",
		match: func(line string, f *Facility) bool {
			return f.Phone == "" && phoneRe.MatchString(line)
		},
		apply: applyPhone,
	},
	{
		name: "administrator",
		match: func(line string, _ *Facility) bool {
			return strings.Contains(strings.ToUpper(line), "ADMINISTRATOR")
		},
		apply: applyAdministrator,
	},
	{
		name: "care-of",
		match: func(line string, _ *Facility) bool {
			return strings.HasPrefix(strings.ToLower(line), "c/o:")
		},
		apply: func(line string, f *Facility) {
			f.CareOfAddress = strings.TrimSpace(line[4:])
		},
	},
	{
		name: "services",
		match: func(line string, _ *Facility) bool {
			for _, kw := range serviceKeywords {
				if strings.Contains(line, kw) {
					return true
				}
			}
			return false
		},
		apply: func(line string, f *Facility) { f.AppendService(line) },
	},
	{
		name:  "accreditation",
		match: func(line string, _ *Facility) bool { return line == "CARF" },
		apply: func(line string, f *Facility) { f.Accreditation = line },
	},
	{
		name: "address",
		match: func(line string, _ *Facility) bool {
			return addrDigitRe.MatchString(line) || addrWordRe.MatchString(line)
		},
		apply: func(line string, f *Facility) {
			if f.Address == "" {
				f.Address = line
			}
		},
	},
	{
		name:  "unclassified",
		match: matchUnclassified,
		apply: applyUnclassified,
	},
}

// ParsePage parses the plain text of one roster page into facility
// records, in the order their header lines appear. Each record starts
// at a header line and extends to the line before the next header (or
// the end of the page). Unrecognized lines are silently skipped;
// ParsePage never fails on malformed input.
//
// rosterDate is an opaque tag stamped on every record; it is not
// derived from page content.
func ParsePage(text, rosterDate string) []*Facility {
	var facilities []*Facility
	lines := strings.Split(text, "\n")

	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])

		m := headerRe.FindStringSubmatch(line)
		if m == nil {
			i++
			continue
		}

		f := &Facility{
			RosterDate:   rosterDate,
			Town:         strings.TrimSpace(m[1]),
			County:       strings.TrimSpace(m[2]),
			ZipCode:      strings.TrimSpace(m[3]),
			FacilityType: FacilityTypeALF,
			Services:     strings.TrimSpace(m[4]),
		}
		i++

		for i < len(lines) {
			body := strings.TrimSpace(lines[i])
			if headerRe.MatchString(body) {
				break // next record starts here
			}
			classifyLine(body, f)
			i++
		}

		if f.Keep() {
			facilities = append(facilities, f)
		}
	}

	return facilities
}

// classifyLine runs the body rules in priority order; the first
// matching rule claims the line.
func classifyLine(line string, f *Facility) {
	for _, r := range bodyRules {
		if r.match(line, f) {
			r.apply(line, f)
			return
		}
	}
}

// isBannerLine reports whether the line is page furniture: the roster
// banner or one of the repeated column-header lines.
func isBannerLine(line string, _ *Facility) bool {
	if strings.Contains(line, "ASSISTED LIVING FACILITY ROSTER") {
		return true
	}
	if strings.HasPrefix(line, "TOWN") && strings.Contains(line, "Zip Code") {
		return true
	}
	if strings.HasPrefix(line, "Name of Facility") {
		return true
	}
	return strings.HasPrefix(line, "Administration")
}

// applyBeds records the licensed bed count and appends any service text
// that shares the line with the count marker.
func applyBeds(line string, f *Facility) {
	m := bedsRe.FindStringSubmatch(line)
	f.TotalBeds = m[1]

	remainder := strings.TrimSpace(bedsRe.ReplaceAllString(line, ""))
	if bedsRemainderIsService(remainder) {
		f.AppendService(remainder)
	}
}

// bedsRemainderIsService reports whether leftover text on the beds line
// should be treated as a service tag. Note the asymmetry: the NURSING
// check requires a non-empty remainder while the ALZHEIMER and MEMORY
// checks stand alone. Downstream fixtures depend on this exact grouping,
// so keep it when touching this function.
func bedsRemainderIsService(remainder string) bool {
	return (remainder != "" && strings.Contains(remainder, "NURSING")) ||
		strings.Contains(remainder, "ALZHEIMER") ||
		strings.Contains(remainder, "MEMORY")
}

// applyLicense records the first license token seen and, if the name
// slot is still open, claims the text preceding the token as the
// facility name.
func applyLicense(line string, f *Facility) {
	token := licenseRe.FindString(line)
	f.LicenseNumber = token

	name := strings.TrimSpace(strings.SplitN(line, token, 2)[0])
	if name != "" && f.FacilityName == "" {
		f.FacilityName = name
	}
}

// applyPhone normalizes the first phone number on the line and picks up
// a fax number only when it shares the line, marked by FAX:.
func applyPhone(line string, f *Facility) {
	m := phoneRe.FindStringSubmatch(line)
	f.Phone = "(" + m[1] + ") " + m[2] + "-" + m[3]

	if fm := faxRe.FindStringSubmatch(line); fm != nil {
		f.Fax = "(" + fm[1] + ") " + fm[2] + "-" + fm[3]
	}
}

// applyAdministrator extracts the name preceding a comma-delimited role
// marker. Lines mentioning ADMINISTRATOR without the expected shape are
// consumed without effect.
func applyAdministrator(line string, f *Facility) {
	if m := adminRe.FindStringSubmatch(line); m != nil {
		f.Administrator = strings.TrimSpace(m[1])
	}
}

// matchUnclassified is the fallback slot claim: a non-empty line that
// is not a page number, not a "Page N of M" footer, and long enough to
// be meaningful. Once the licensee slot is taken the fallback stops
// claiming lines entirely.
func matchUnclassified(line string, f *Facility) bool {
	return line != "" &&
		f.Licensee == "" &&
		!strings.HasPrefix(line, "Page ") &&
		!pageNumRe.MatchString(line) &&
		len(line) > 3
}

// applyUnclassified claims the first open unclassified slot: facility
// name first, licensee second.
func applyUnclassified(line string, f *Facility) {
	if f.FacilityName == "" {
		f.FacilityName = line
		return
	}
	f.Licensee = line
}
