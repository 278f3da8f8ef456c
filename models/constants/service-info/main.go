package serviceInfo

import "fmt"

type ServiceInfo string

var (
	SERVICE_NAME        ServiceInfo = "Liquid Biopsy ctDNA Demo Service"
	SERVICE_WELCOME     ServiceInfo = "Welcome to the Liquid Biopsy ctDNA analysis demo API!"
	SERVICE_DESCRIPTION ServiceInfo = "Synthetic ctDNA variant and QC trend service for a demonstration dashboard."
	SERVICE_CONTACT     ServiceInfo = "mailto:ajunisohota@gmail.com"

	SERVICE_ARTIFACT    ServiceInfo = "liquid-biopsy"
	SERVICE_VERSION     ServiceInfo = "0.1.0"
	SERVICE_TYPE_NO_VER ServiceInfo = ServiceInfo(fmt.Sprintf("org.liquidbiopsy.demo:%s", SERVICE_ARTIFACT))
	SERVICE_ID          ServiceInfo = SERVICE_TYPE_NO_VER
	SERVICE_TYPE        ServiceInfo = ServiceInfo(fmt.Sprintf("%s:%s", SERVICE_TYPE_NO_VER, SERVICE_VERSION))
)
