package adapter

import (
	"fmt"
	"strings"
)

const reportTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<VAL xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
  <RESULTSHEADER>
    <COUNTRY>
      <REGULATION>ECE</REGULATION>
      <LANGUAGE>de</LANGUAGE>
    </COUNTRY>
    <CARDEALER>
      <NAME>Autohaus Muster</NAME>
      <COMPANY>Muster GmbH</COMPANY>
      <ADDRESS>Hauptstrasse 1</ADDRESS>
      <ZIP>70173</ZIP>
      <CITY>Stuttgart</CITY>
      <TEL>0711 123456</TEL>
      <DEALERNO>4711</DEALERNO>
      <ORDER>A-100</ORDER>
      <WARRANTYNO></WARRANTYNO>
    </CARDEALER>
    <VEHICLE>
      <IDENT>
        <VIN>WDD2050001F000001</VIN>
        <REGISTRATION>S-VD 100</REGISTRATION>
      </IDENT>
      <DATA>
        <ODOMETER UNIT="km">12345</ODOMETER>
        <OPERATINGTIME UNIT="h">321</OPERATINGTIME>
        <ORDERTYPE>Service</ORDERTYPE>
        <MODEL>C 200</MODEL>
        <MODELTYPE>205.042</MODELTYPE>
        <ENGINETYPE>274.920</ENGINETYPE>
        <COUNTRYCODE>DE</COUNTRYCODE>
        <GEARBOXTYPE>725.011</GEARBOXTYPE>
        <ONBOARDVOLTAGE UNIT="V">12.6</ONBOARDVOLTAGE>
      </DATA>
    </VEHICLE>
  </RESULTSHEADER>
  <RESULT OBJECT="VAL" METHOD="Quicktest">
    <TITLE>Quick test</TITLE>
    <HEADER>
      <START_TEST>03.02.2024 10:15:00</START_TEST>
      <END_TEST>03.02.2024 10:45:30</END_TEST>
      <TIMEZONE>GMT+01:00</TIMEZONE>
      <PROTOKOLLTYPE>VAL</PROTOKOLLTYPE>
      <EQUIPMENT TYPE="XENTRY">
        <TITLE>Diagnosis</TITLE>
        <MANUFACTURER>Acme</MANUFACTURER>
        <MODEL>DiagBox</MODEL>
        <SERIAL_NO>SN-1</SERIAL_NO>
        <FIRMWARE>1.0</FIRMWARE>
        <VERSION>23.9</VERSION>
        <PT2GVERSION>1.2.3</PT2GVERSION>
        <BR_PDX>2.1</BR_PDX>
        <PDU_API>1.20</PDU_API>
        <SAMDIAX_VERSION>4.2</SAMDIAX_VERSION>
        <SYSTEM>Windows</SYSTEM>
        <JAVA>17</JAVA>
        <MODE>online</MODE>
      </EQUIPMENT>
    </HEADER>
%s
  </RESULT>
</VAL>
`

const gatewaySection = `    <SECTION OBJECT="ECU">
      <TITLE>Gateway</TITLE>
      <MEAS OBJECT="Codierung">
        <TITLE>Control unit, coding</TITLE>
        <VALUE FORMAT="ALPHA" TEXT="Scanner code" LABEL="X">205 ABC</VALUE>
        <VALUE FORMAT="NUM" TEXT="12.6 V" UNIT="V" LABEL="Voltage">12.6</VALUE>
        <VALUE FORMAT="ALPHA" TEXT="not set" LABEL="Empty"></VALUE>
      </MEAS>
      <MEAS OBJECT="Fehler">
        <TITLE>Faults</TITLE>
        <MEAS OBJECT="Identifikation">
          <TITLE>Event</TITLE>
          <VALUE FORMAT="ALPHA" TEXT="active" LABEL="Status">A</VALUE>
        </MEAS>
      </MEAS>
    </SECTION>`

// reportXML renders a complete report document around the given SECTION elements.
func reportXML(sections ...string) string {
	return fmt.Sprintf(reportTemplate, strings.Join(sections, "\n"))
}
