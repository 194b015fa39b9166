package country

// Filter returns the countries whose region equals region, preserving input
// order. AllRegions returns the input unchanged. The input is never modified.
func Filter(countries []Country, region string) []Country {
	if region == AllRegions {
		if countries == nil {
			return []Country{}
		}
		return countries
	}

	filtered := make([]Country, 0, len(countries))
	for _, c := range countries {
		if c.Region == region {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// Regions lists the distinct region values in order of first appearance.
func Regions(countries []Country) []string {
	seen := make(map[string]struct{})
	regions := make([]string, 0)
	for _, c := range countries {
		if _, ok := seen[c.Region]; ok {
			continue
		}
		seen[c.Region] = struct{}{}
		regions = append(regions, c.Region)
	}
	return regions
}

// RegionOptions returns AllRegions followed by every known region.
func RegionOptions(countries []Country) []string {
	return append([]string{AllRegions}, Regions(countries)...)
}

// CountByRegion returns the number of countries in each region.
func CountByRegion(countries []Country) map[string]int {
	counts := make(map[string]int)
	for _, c := range countries {
		counts[c.Region]++
	}
	return counts
}
