package isl94202

// Register map (16-bit words, little-endian on the bus: low byte at the even
// address, high byte at address+1).

const (
	// 7-bit I2C address (0101_000b).
	AddressDefault = 0x28

	// --- Configuration / threshold words (EEPROM backed) ---

	RegOVLCPW  = 0x00 // overvoltage threshold, charge detect pulse width
	RegOVR     = 0x02 // overvoltage recovery
	RegUVLLPW  = 0x04 // undervoltage threshold, load detect pulse width
	RegUVR     = 0x06 // undervoltage recovery
	RegOVLO    = 0x08 // overvoltage lockout threshold
	RegUVLO    = 0x0A // undervoltage lockout threshold
	RegEOC     = 0x0C // end-of-charge threshold
	RegLVCH    = 0x0E // low voltage charge level
	RegOVDT    = 0x10 // overvoltage delay time out
	RegUVDT    = 0x12 // undervoltage delay time out
	RegOWT     = 0x14 // open-wire timing
	RegOCDTOCD = 0x16 // discharge overcurrent time out / threshold
	RegOCCTOCC = 0x18 // charge overcurrent time out / threshold
	RegSCDTSCD = 0x1A // discharge short-circuit time out / threshold
	RegCBVL    = 0x1C // cell balance minimum voltage (CBMIN)
	RegCBVU    = 0x1E // cell balance maximum voltage (CBMAX)
	RegCBDL    = 0x20 // cell balance minimum differential voltage
	RegCBDU    = 0x22 // cell balance maximum differential voltage
	RegCBONT   = 0x24 // cell balance on time
	RegCBOFT   = 0x26 // cell balance off time
	RegCBUTS   = 0x28 // cell balance minimum temperature limit
	RegCBUTR   = 0x2A // cell balance minimum temperature recovery
	RegCBOTS   = 0x2C // cell balance maximum temperature limit
	RegCBOTR   = 0x2E // cell balance maximum temperature recovery
	RegCOTS    = 0x30 // charge over-temperature voltage
	RegCOTR    = 0x32 // charge over-temperature recovery voltage
	RegCUTS    = 0x34 // charge under-temperature voltage
	RegCUTR    = 0x36 // charge under-temperature recovery voltage
	RegDOTS    = 0x38 // discharge over-temperature voltage
	RegDOTR    = 0x3A // discharge over-temperature recovery voltage
	RegDUTS    = 0x3C // discharge under-temperature voltage
	RegDUTR    = 0x3E // discharge under-temperature recovery voltage
	RegIOTS    = 0x40 // internal over-temperature voltage
	RegIOTR    = 0x42 // internal over-temperature recovery voltage
	RegSLL     = 0x44 // sleep level voltage
	RegSLTWDT  = 0x46 // sleep delay, watchdog timer
	RegMODCELL = 0x48 // mode timer, cell configuration
	RegFC      = 0x4A // feature controls (0x4A low byte, 0x4B high byte)

	// --- Telemetry words (RAM, read-only) ---

	RegCellMin = 0x8A
	RegCellMax = 0x8C
	RegISNS    = 0x8E
	RegCell1   = 0x90
	RegCell2   = 0x92
	RegCell3   = 0x94
	RegCell4   = 0x96
	RegCell5   = 0x98
	RegCell6   = 0x9A
	RegCell7   = 0x9C
	RegCell8   = 0x9E
	RegIT      = 0xA0 // internal temperature
	RegXT1     = 0xA2 // external temperature 1
	RegXT2     = 0xA4 // external temperature 2
	RegVBATT   = 0xA6 // pack voltage
	RegVRGO    = 0xA8 // regulator output
	RegADC     = 0xAA // raw ADC

	// ADC readings occupy bits 11:0 of each telemetry word.
	adcMask = 0x0FFF
)

// Configuration word span.
const (
	ConfigFirst    = RegOVLCPW
	ConfigLast     = RegFC
	NumConfigWords = (ConfigLast-ConfigFirst)/2 + 1
)

// TelemetryRegs lists the read-only telemetry words in address order.
var TelemetryRegs = [...]uint8{
	RegCellMin, RegCellMax, RegISNS,
	RegCell1, RegCell2, RegCell3, RegCell4,
	RegCell5, RegCell6, RegCell7, RegCell8,
	RegIT, RegXT1, RegXT2, RegVBATT, RegVRGO, RegADC,
}

// 12-bit voltage/temperature word at addr.
func adc12(name, desc string, addr uint8) Field {
	return Field{Name: name, Desc: desc, Addr: addr, Mask: 0x0FFF}
}

// Delay word: count in the low bits, unit selector in the top scaleBits.
func delay(name, desc string, addr uint8, mask uint16, scaleBits uint8) Field {
	return Field{Name: name, Desc: desc, Addr: addr, Mask: mask, Kind: KindDelay, ScaleBits: scaleBits}
}

func flag(name, desc string, bit uint8) Field {
	return Field{Name: name, Desc: desc, Addr: RegFC, Shift: bit, Mask: 1 << bit, Kind: KindFlag}
}

// Configuration fields. These are descriptors, not state: treat them as
// read-only. Lookups (Fields, FieldByName, FieldsAt, ThresholdFor) work from
// an internal copy taken at init and never observe reassignment.
var (
	OVL = adc12("OVL", "overvoltage threshold", RegOVLCPW)
	CPW = Field{Name: "CPW", Desc: "charge detect pulse width", Addr: RegOVLCPW, Shift: 12, Mask: 0xF << 12}
	OVR = adc12("OVR", "overvoltage recovery", RegOVR)
	UVL = adc12("UVL", "undervoltage threshold", RegUVLLPW)
	LPW = Field{Name: "LPW", Desc: "load detect pulse width", Addr: RegUVLLPW, Shift: 12, Mask: 0xF << 12}
	UVR = adc12("UVR", "undervoltage recovery", RegUVR)

	OVLO = adc12("OVLO", "overvoltage lockout threshold", RegOVLO)
	UVLO = adc12("UVLO", "undervoltage lockout threshold", RegUVLO)
	EOC  = adc12("EOC", "end-of-charge threshold", RegEOC)
	LVCH = adc12("LVCH", "low voltage charge level", RegLVCH)

	OVDT = delay("OVDT", "overvoltage delay time out", RegOVDT, 0x0FFF, 2)
	UVDT = delay("UVDT", "undervoltage delay time out", RegUVDT, 0x0FFF, 2)
	OWT  = delay("OWT", "open-wire timing", RegOWT, 0x03FF, 1)

	OCDT = delay("OCDT", "discharge overcurrent time out", RegOCDTOCD, 0x0FFF, 2)
	OCD  = Field{Name: "OCD", Desc: "discharge overcurrent threshold", Addr: RegOCDTOCD, Shift: 12, Mask: 0x7 << 12, Kind: KindCode}
	OCCT = delay("OCCT", "charge overcurrent time out", RegOCCTOCC, 0x0FFF, 2)
	OCC  = Field{Name: "OCC", Desc: "charge overcurrent threshold", Addr: RegOCCTOCC, Shift: 12, Mask: 0x7 << 12, Kind: KindCode}
	SCDT = delay("SCDT", "discharge short-circuit time out", RegSCDTSCD, 0x0FFF, 2)
	SCD  = Field{Name: "SCD", Desc: "discharge short-circuit threshold", Addr: RegSCDTSCD, Shift: 12, Mask: 0x7 << 12, Kind: KindCode}

	CBVL  = adc12("CBVL", "cell balance minimum voltage", RegCBVL)
	CBVU  = adc12("CBVU", "cell balance maximum voltage", RegCBVU)
	CBDL  = adc12("CBDL", "cell balance minimum differential voltage", RegCBDL)
	CBDU  = adc12("CBDU", "cell balance maximum differential voltage", RegCBDU)
	CBONT = delay("CBONT", "cell balance on time", RegCBONT, 0x0FFF, 2)
	CBOFT = delay("CBOFT", "cell balance off time", RegCBOFT, 0x0FFF, 2)

	CBUTS = adc12("CBUTS", "cell balance minimum temperature limit", RegCBUTS)
	CBUTR = adc12("CBUTR", "cell balance minimum temperature recovery", RegCBUTR)
	CBOTS = adc12("CBOTS", "cell balance maximum temperature limit", RegCBOTS)
	CBOTR = adc12("CBOTR", "cell balance maximum temperature recovery", RegCBOTR)
	COTS  = adc12("COTS", "charge over-temperature voltage", RegCOTS)
	COTR  = adc12("COTR", "charge over-temperature recovery voltage", RegCOTR)
	CUTS  = adc12("CUTS", "charge under-temperature voltage", RegCUTS)
	CUTR  = adc12("CUTR", "charge under-temperature recovery voltage", RegCUTR)
	DOTS  = adc12("DOTS", "discharge over-temperature voltage", RegDOTS)
	DOTR  = adc12("DOTR", "discharge over-temperature recovery voltage", RegDOTR)
	DUTS  = adc12("DUTS", "discharge under-temperature voltage", RegDUTS)
	DUTR  = adc12("DUTR", "discharge under-temperature recovery voltage", RegDUTR)
	IOTS  = adc12("IOTS", "internal over-temperature voltage", RegIOTS)
	IOTR  = adc12("IOTR", "internal over-temperature recovery voltage", RegIOTR)

	SLL = adc12("SLL", "sleep level voltage", RegSLL)
	SLT = delay("SLT", "sleep delay", RegSLTWDT, 0x07FF, 2)
	WDT = Field{Name: "WDT", Desc: "watchdog timer", Addr: RegSLTWDT, Shift: 11, Mask: 0x1F << 11}

	MOD  = Field{Name: "MOD", Desc: "mode timer", Addr: RegMODCELL, Mask: 0xFF}
	CELL = Field{Name: "CELL", Desc: "cell configuration", Addr: RegMODCELL, Shift: 8, Mask: 0xFF << 8}

	// Feature controls: one bit each across 0x4A (bits 7:0) and 0x4B (bits 15:8).
	CFPSD  = flag("CFPSD", "cell fail PSD", 0)
	XT2M   = flag("XT2M", "xTemp2 mode control", 1)
	TGAIN  = flag("TGAIN", "external temp gain", 2)
	PCFETE = flag("PCFETE", "precharge FET enable", 4)
	DOWD   = flag("DOWD", "disable open-wire scan", 5)
	OWPSD  = flag("OWPSD", "open-wire PSD", 6)
	CBDD   = flag("CBDD", "cell balance during discharge", 8)
	CBDC   = flag("CBDC", "cell balance during charge", 9)
	DFODUV = flag("DFODUV", "DFET on during UV (charging)", 10)
	DFODOV = flag("DFODOV", "CFET on during OV (discharging)", 11)
	UVLOPD = flag("UVLOPD", "enable UVLO power-down", 12)
	CBEOC  = flag("CBEOC", "enable cell balance during EOC", 15)
)

var fieldTable = []Field{
	OVL, CPW, OVR, UVL, LPW, UVR,
	OVLO, UVLO, EOC, LVCH,
	OVDT, UVDT, OWT,
	OCDT, OCD, OCCT, OCC, SCDT, SCD,
	CBVL, CBVU, CBDL, CBDU, CBONT, CBOFT,
	CBUTS, CBUTR, CBOTS, CBOTR,
	COTS, COTR, CUTS, CUTR,
	DOTS, DOTR, DUTS, DUTR,
	IOTS, IOTR,
	SLL, SLT, WDT,
	MOD, CELL,
	CFPSD, XT2M, TGAIN, PCFETE, DOWD, OWPSD,
	CBDD, CBDC, DFODUV, DFODOV, UVLOPD, CBEOC,
}
