package validate

import (
	"fmt"

	"resume-data-go/internal/types"
)

// authorizationRegion 一个地区的四个许可标志及其字段名
type authorizationRegion struct {
	name                 string
	authorization        string
	authorizationField   string
	requiresVisa         string
	requiresVisaField    string
	legallyAllowed       string
	legallyAllowedField  string
	requiresSponsor      string
	requiresSponsorField string
}

// checkAuthorizationConsistency 检查 legal_authorization 段内部的逻辑一致性。
// 文档模式本身不保证这些标志互相吻合，矛盾组合只产生警告，
// 不会让校验失败。
func checkAuthorizationConsistency(report *Report, auth *types.LegalAuthorization) {
	regions := []authorizationRegion{
		{
			name:                 "EU",
			authorization:        auth.EUWorkAuthorization,
			authorizationField:   "legal_authorization.eu_work_authorization",
			requiresVisa:         auth.RequiresEUVisa,
			requiresVisaField:    "legal_authorization.requires_eu_visa",
			legallyAllowed:       auth.LegallyAllowedToWorkInEU,
			legallyAllowedField:  "legal_authorization.legally_allowed_to_work_in_eu",
			requiresSponsor:      auth.RequiresEUSponsorship,
			requiresSponsorField: "legal_authorization.requires_eu_sponsorship",
		},
		{
			name:                 "US",
			authorization:        auth.USWorkAuthorization,
			authorizationField:   "legal_authorization.us_work_authorization",
			requiresVisa:         auth.RequiresUSVisa,
			requiresVisaField:    "legal_authorization.requires_us_visa",
			legallyAllowed:       auth.LegallyAllowedToWorkInUS,
			legallyAllowedField:  "legal_authorization.legally_allowed_to_work_in_us",
			requiresSponsor:      auth.RequiresUSSponsorship,
			requiresSponsorField: "legal_authorization.requires_us_sponsorship",
		},
		{
			name:                 "Canada",
			authorization:        auth.CanadaWorkAuthorization,
			authorizationField:   "legal_authorization.canada_work_authorization",
			requiresVisa:         auth.RequiresCanadaVisa,
			requiresVisaField:    "legal_authorization.requires_canada_visa",
			legallyAllowed:       auth.LegallyAllowedToWorkInCanada,
			legallyAllowedField:  "legal_authorization.legally_allowed_to_work_in_canada",
			requiresSponsor:      auth.RequiresCanadaSponsorship,
			requiresSponsorField: "legal_authorization.requires_canada_sponsorship",
		},
		{
			name:                 "UK",
			authorization:        auth.UKWorkAuthorization,
			authorizationField:   "legal_authorization.uk_work_authorization",
			requiresVisa:         auth.RequiresUKVisa,
			requiresVisaField:    "legal_authorization.requires_uk_visa",
			legallyAllowed:       auth.LegallyAllowedToWorkInUK,
			legallyAllowedField:  "legal_authorization.legally_allowed_to_work_in_uk",
			requiresSponsor:      auth.RequiresUKSponsorship,
			requiresSponsorField: "legal_authorization.requires_uk_sponsorship",
		},
	}

	for _, r := range regions {
		authVal, authOK := yesNo(r.authorization)
		visaVal, visaOK := yesNo(r.requiresVisa)
		allowedVal, allowedOK := yesNo(r.legallyAllowed)
		sponsorVal, sponsorOK := yesNo(r.requiresSponsor)

		// 已有工作许可却声称需要签证
		if authOK && visaOK && authVal && visaVal {
			report.addWarning(r.requiresVisaField, "authorization_conflict",
				fmt.Sprintf("%s: 已有工作许可 (%s: Yes) 却声称需要签证", r.name, r.authorizationField))
		}

		// 已有工作许可却声称需要担保
		if authOK && sponsorOK && authVal && sponsorVal {
			report.addWarning(r.requiresSponsorField, "authorization_conflict",
				fmt.Sprintf("%s: 已有工作许可 (%s: Yes) 却声称需要担保", r.name, r.authorizationField))
		}

		// 工作许可与合法工作资格互相矛盾
		if authOK && allowedOK && authVal != allowedVal {
			report.addWarning(r.legallyAllowedField, "authorization_conflict",
				fmt.Sprintf("%s: %s 与 %s 取值矛盾", r.name, r.authorizationField, r.legallyAllowedField))
		}

		// 声称合法可工作却又需要签证
		if allowedOK && visaOK && allowedVal && visaVal {
			report.addWarning(r.requiresVisaField, "authorization_conflict",
				fmt.Sprintf("%s: 合法可工作 (%s: Yes) 却声称需要签证", r.name, r.legallyAllowedField))
		}
	}
}
