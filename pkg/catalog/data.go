package catalog

// GpuList is the seed catalog of known GPUs. Used prices are rough eBay-style
// market averages and only tracked for cards with an active second-hand market.
var GpuList = []GpuSpec{
	// NVIDIA - RTX 50 Series (Blackwell)
	{Name: "NVIDIA RTX 5090", Vendor: "NVIDIA", VramMb: 32768, MemoryBandwidthGbps: 1792, TdpWatts: 575, Architecture: "Blackwell", MsrpUsd: 1999},
	{Name: "NVIDIA RTX 5080", Vendor: "NVIDIA", VramMb: 16384, MemoryBandwidthGbps: 960, TdpWatts: 360, Architecture: "Blackwell", MsrpUsd: 999},
	{Name: "NVIDIA RTX 5070 Ti", Vendor: "NVIDIA", VramMb: 16384, MemoryBandwidthGbps: 896, TdpWatts: 300, Architecture: "Blackwell", MsrpUsd: 749},
	{Name: "NVIDIA RTX 5070", Vendor: "NVIDIA", VramMb: 12288, MemoryBandwidthGbps: 672, TdpWatts: 250, Architecture: "Blackwell", MsrpUsd: 549},

	// NVIDIA - RTX 40 Series
	{Name: "NVIDIA RTX 4090", Vendor: "NVIDIA", VramMb: 24576, MemoryBandwidthGbps: 1008, TdpWatts: 450, Architecture: "Ada Lovelace", MsrpUsd: 1599, UsedPriceUsd: 1450},
	{Name: "NVIDIA RTX 4080 SUPER", Vendor: "NVIDIA", VramMb: 16384, MemoryBandwidthGbps: 736, TdpWatts: 320, Architecture: "Ada Lovelace", MsrpUsd: 999, UsedPriceUsd: 850},
	{Name: "NVIDIA RTX 4080", Vendor: "NVIDIA", VramMb: 16384, MemoryBandwidthGbps: 717, TdpWatts: 320, Architecture: "Ada Lovelace", MsrpUsd: 1199, UsedPriceUsd: 900},
	{Name: "NVIDIA RTX 4070 Ti SUPER", Vendor: "NVIDIA", VramMb: 16384, MemoryBandwidthGbps: 672, TdpWatts: 285, Architecture: "Ada Lovelace", MsrpUsd: 799, UsedPriceUsd: 700},
	{Name: "NVIDIA RTX 4070 Ti", Vendor: "NVIDIA", VramMb: 12288, MemoryBandwidthGbps: 504, TdpWatts: 285, Architecture: "Ada Lovelace", MsrpUsd: 799, UsedPriceUsd: 600},
	{Name: "NVIDIA RTX 4070 SUPER", Vendor: "NVIDIA", VramMb: 12288, MemoryBandwidthGbps: 504, TdpWatts: 220, Architecture: "Ada Lovelace", MsrpUsd: 599, UsedPriceUsd: 520},
	{Name: "NVIDIA RTX 4070", Vendor: "NVIDIA", VramMb: 12288, MemoryBandwidthGbps: 504, TdpWatts: 200, Architecture: "Ada Lovelace", MsrpUsd: 549, UsedPriceUsd: 450},
	{Name: "NVIDIA RTX 4060 Ti 16GB", Vendor: "NVIDIA", VramMb: 16384, MemoryBandwidthGbps: 288, TdpWatts: 165, Architecture: "Ada Lovelace", MsrpUsd: 499, UsedPriceUsd: 420},
	{Name: "NVIDIA RTX 4060 Ti 8GB", Vendor: "NVIDIA", VramMb: 8192, MemoryBandwidthGbps: 288, TdpWatts: 160, Architecture: "Ada Lovelace", MsrpUsd: 399, UsedPriceUsd: 300},
	{Name: "NVIDIA RTX 4060", Vendor: "NVIDIA", VramMb: 8192, MemoryBandwidthGbps: 272, TdpWatts: 115, Architecture: "Ada Lovelace", MsrpUsd: 299, UsedPriceUsd: 250},

	// NVIDIA - RTX 30 Series
	{Name: "NVIDIA RTX 3090 Ti", Vendor: "NVIDIA", VramMb: 24576, MemoryBandwidthGbps: 1008, TdpWatts: 450, Architecture: "Ampere", MsrpUsd: 1999, UsedPriceUsd: 900},
	{Name: "NVIDIA RTX 3090", Vendor: "NVIDIA", VramMb: 24576, MemoryBandwidthGbps: 936, TdpWatts: 350, Architecture: "Ampere", MsrpUsd: 1499, UsedPriceUsd: 750},
	{Name: "NVIDIA RTX 3080 Ti", Vendor: "NVIDIA", VramMb: 12288, MemoryBandwidthGbps: 912, TdpWatts: 350, Architecture: "Ampere", MsrpUsd: 1199, UsedPriceUsd: 500},
	{Name: "NVIDIA RTX 3080 12GB", Vendor: "NVIDIA", VramMb: 12288, MemoryBandwidthGbps: 912, TdpWatts: 350, Architecture: "Ampere", MsrpUsd: 799, UsedPriceUsd: 430},
	{Name: "NVIDIA RTX 3080 10GB", Vendor: "NVIDIA", VramMb: 10240, MemoryBandwidthGbps: 760, TdpWatts: 320, Architecture: "Ampere", MsrpUsd: 699, UsedPriceUsd: 380},
	{Name: "NVIDIA RTX 3070 Ti", Vendor: "NVIDIA", VramMb: 8192, MemoryBandwidthGbps: 608, TdpWatts: 290, Architecture: "Ampere", MsrpUsd: 599, UsedPriceUsd: 300},
	{Name: "NVIDIA RTX 3070", Vendor: "NVIDIA", VramMb: 8192, MemoryBandwidthGbps: 448, TdpWatts: 220, Architecture: "Ampere", MsrpUsd: 499, UsedPriceUsd: 270},
	{Name: "NVIDIA RTX 3060 Ti", Vendor: "NVIDIA", VramMb: 8192, MemoryBandwidthGbps: 448, TdpWatts: 200, Architecture: "Ampere", MsrpUsd: 399, UsedPriceUsd: 220},
	{Name: "NVIDIA RTX 3060 12GB", Vendor: "NVIDIA", VramMb: 12288, MemoryBandwidthGbps: 360, TdpWatts: 170, Architecture: "Ampere", MsrpUsd: 329, UsedPriceUsd: 210},

	// NVIDIA - Professional / Data Center (Blackwell)
	{Name: "NVIDIA B200", Vendor: "NVIDIA", VramMb: 196608, MemoryBandwidthGbps: 8000, TdpWatts: 1000, Architecture: "Blackwell", MsrpUsd: 40000},
	{Name: "NVIDIA B100", Vendor: "NVIDIA", VramMb: 196608, MemoryBandwidthGbps: 8000, TdpWatts: 700, Architecture: "Blackwell", MsrpUsd: 35000},
	{Name: "NVIDIA GB200 NVL72", Vendor: "NVIDIA", VramMb: 196608, MemoryBandwidthGbps: 8000, TdpWatts: 1200, Architecture: "Blackwell", MsrpUsd: 50000},

	// NVIDIA - Professional / Data Center (Hopper, Ampere, Ada)
	{Name: "NVIDIA H100 80GB", Vendor: "NVIDIA", VramMb: 81920, MemoryBandwidthGbps: 3350, TdpWatts: 700, Architecture: "Hopper", MsrpUsd: 30000},
	{Name: "NVIDIA H100 PCIe", Vendor: "NVIDIA", VramMb: 81920, MemoryBandwidthGbps: 2000, TdpWatts: 350, Architecture: "Hopper", MsrpUsd: 25000},
	{Name: "NVIDIA H200", Vendor: "NVIDIA", VramMb: 143360, MemoryBandwidthGbps: 4800, TdpWatts: 700, Architecture: "Hopper", MsrpUsd: 35000},
	{Name: "NVIDIA A100 80GB", Vendor: "NVIDIA", VramMb: 81920, MemoryBandwidthGbps: 2039, TdpWatts: 400, Architecture: "Ampere", MsrpUsd: 15000, UsedPriceUsd: 9000},
	{Name: "NVIDIA A100 40GB", Vendor: "NVIDIA", VramMb: 40960, MemoryBandwidthGbps: 1555, TdpWatts: 400, Architecture: "Ampere", MsrpUsd: 10000, UsedPriceUsd: 4800},
	{Name: "NVIDIA A6000", Vendor: "NVIDIA", VramMb: 49152, MemoryBandwidthGbps: 768, TdpWatts: 300, Architecture: "Ampere", MsrpUsd: 4650, UsedPriceUsd: 3200},
	{Name: "NVIDIA A5000", Vendor: "NVIDIA", VramMb: 24576, MemoryBandwidthGbps: 768, TdpWatts: 230, Architecture: "Ampere", MsrpUsd: 2500, UsedPriceUsd: 1300},
	{Name: "NVIDIA A4000", Vendor: "NVIDIA", VramMb: 16384, MemoryBandwidthGbps: 448, TdpWatts: 140, Architecture: "Ampere", MsrpUsd: 1000, UsedPriceUsd: 600},
	{Name: "NVIDIA L40S", Vendor: "NVIDIA", VramMb: 49152, MemoryBandwidthGbps: 864, TdpWatts: 350, Architecture: "Ada Lovelace", MsrpUsd: 8000},
	{Name: "NVIDIA L40", Vendor: "NVIDIA", VramMb: 49152, MemoryBandwidthGbps: 864, TdpWatts: 300, Architecture: "Ada Lovelace", MsrpUsd: 7000},
	{Name: "NVIDIA L4", Vendor: "NVIDIA", VramMb: 24576, MemoryBandwidthGbps: 300, TdpWatts: 72, Architecture: "Ada Lovelace", MsrpUsd: 2500},
	{Name: "NVIDIA RTX Pro 6000", Vendor: "NVIDIA", VramMb: 98304, MemoryBandwidthGbps: 1792, TdpWatts: 350, Architecture: "Blackwell", MsrpUsd: 8000},
	{Name: "NVIDIA RTX PRO 6000 Workstation", Vendor: "NVIDIA", VramMb: 98304, MemoryBandwidthGbps: 1792, TdpWatts: 350, Architecture: "Blackwell", MsrpUsd: 8000},

	// NVIDIA - unified-memory systems
	{Name: "NVIDIA DGX Spark", Vendor: "NVIDIA", VramMb: 131072, MemoryBandwidthGbps: 273, TdpWatts: 140, Architecture: "Blackwell", MsrpUsd: 3999},
	{Name: "NVIDIA Jetson Thor", Vendor: "NVIDIA", VramMb: 131072, MemoryBandwidthGbps: 273, TdpWatts: 130, Architecture: "Blackwell", MsrpUsd: 4999},

	// AMD - Ryzen AI Max (Strix Halo APU, unified memory)
	{Name: "AMD Ryzen AI Max+ 395", Vendor: "AMD", VramMb: 131072, MemoryBandwidthGbps: 256, TdpWatts: 120, Architecture: "RDNA 3.5", MsrpUsd: 2999},
	{Name: "AMD Ryzen AI Max 390", Vendor: "AMD", VramMb: 131072, MemoryBandwidthGbps: 256, TdpWatts: 120, Architecture: "RDNA 3.5", MsrpUsd: 2499},
	{Name: "AMD Ryzen AI Max 385", Vendor: "AMD", VramMb: 65536, MemoryBandwidthGbps: 256, TdpWatts: 100, Architecture: "RDNA 3.5", MsrpUsd: 1999},

	// AMD - RX 9000 Series (RDNA 4)
	{Name: "AMD RX 9070 XT", Vendor: "AMD", VramMb: 16384, MemoryBandwidthGbps: 650, TdpWatts: 280, Architecture: "RDNA 4", MsrpUsd: 599},
	{Name: "AMD RX 9070", Vendor: "AMD", VramMb: 16384, MemoryBandwidthGbps: 576, TdpWatts: 250, Architecture: "RDNA 4", MsrpUsd: 499},

	// AMD - RX 7000 Series
	{Name: "AMD RX 7900 XTX", Vendor: "AMD", VramMb: 24576, MemoryBandwidthGbps: 960, TdpWatts: 355, Architecture: "RDNA 3", MsrpUsd: 999, UsedPriceUsd: 750},
	{Name: "AMD RX 7900 XT", Vendor: "AMD", VramMb: 20480, MemoryBandwidthGbps: 800, TdpWatts: 315, Architecture: "RDNA 3", MsrpUsd: 899, UsedPriceUsd: 600},
	{Name: "AMD RX 7900 GRE", Vendor: "AMD", VramMb: 16384, MemoryBandwidthGbps: 576, TdpWatts: 260, Architecture: "RDNA 3", MsrpUsd: 549},
	{Name: "AMD RX 7800 XT", Vendor: "AMD", VramMb: 16384, MemoryBandwidthGbps: 624, TdpWatts: 263, Architecture: "RDNA 3", MsrpUsd: 499, UsedPriceUsd: 400},
	{Name: "AMD RX 7700 XT", Vendor: "AMD", VramMb: 12288, MemoryBandwidthGbps: 432, TdpWatts: 245, Architecture: "RDNA 3", MsrpUsd: 449},
	{Name: "AMD RX 7600 XT", Vendor: "AMD", VramMb: 16384, MemoryBandwidthGbps: 288, TdpWatts: 190, Architecture: "RDNA 3", MsrpUsd: 329},
	{Name: "AMD RX 7600", Vendor: "AMD", VramMb: 8192, MemoryBandwidthGbps: 288, TdpWatts: 165, Architecture: "RDNA 3", MsrpUsd: 269},

	// AMD - RX 6000 Series
	{Name: "AMD RX 6950 XT", Vendor: "AMD", VramMb: 16384, MemoryBandwidthGbps: 576, TdpWatts: 335, Architecture: "RDNA 2", MsrpUsd: 1099, UsedPriceUsd: 450},
	{Name: "AMD RX 6900 XT", Vendor: "AMD", VramMb: 16384, MemoryBandwidthGbps: 512, TdpWatts: 300, Architecture: "RDNA 2", MsrpUsd: 999, UsedPriceUsd: 400},
	{Name: "AMD RX 6800 XT", Vendor: "AMD", VramMb: 16384, MemoryBandwidthGbps: 512, TdpWatts: 300, Architecture: "RDNA 2", MsrpUsd: 649, UsedPriceUsd: 330},
	{Name: "AMD RX 6800", Vendor: "AMD", VramMb: 16384, MemoryBandwidthGbps: 512, TdpWatts: 250, Architecture: "RDNA 2", MsrpUsd: 579, UsedPriceUsd: 300},
	{Name: "AMD RX 6700 XT", Vendor: "AMD", VramMb: 12288, MemoryBandwidthGbps: 384, TdpWatts: 230, Architecture: "RDNA 2", MsrpUsd: 479, UsedPriceUsd: 250},

	// AMD - Professional / Data Center
	{Name: "AMD MI300X", Vendor: "AMD", VramMb: 196608, MemoryBandwidthGbps: 5300, TdpWatts: 750, Architecture: "CDNA 3", MsrpUsd: 15000},
	{Name: "AMD MI250X", Vendor: "AMD", VramMb: 131072, MemoryBandwidthGbps: 3277, TdpWatts: 560, Architecture: "CDNA 2", MsrpUsd: 12000},
	{Name: "AMD MI210", Vendor: "AMD", VramMb: 65536, MemoryBandwidthGbps: 1638, TdpWatts: 300, Architecture: "CDNA 2", MsrpUsd: 8000},
	{Name: "AMD W7900", Vendor: "AMD", VramMb: 49152, MemoryBandwidthGbps: 864, TdpWatts: 295, Architecture: "RDNA 3", MsrpUsd: 3999},
	{Name: "AMD W7800", Vendor: "AMD", VramMb: 32768, MemoryBandwidthGbps: 576, TdpWatts: 260, Architecture: "RDNA 3", MsrpUsd: 2499},

	// Apple Silicon (unified memory)
	{Name: "Apple M4 Max", Vendor: "Apple", VramMb: 131072, MemoryBandwidthGbps: 546, TdpWatts: 75, Architecture: "Apple Silicon", MsrpUsd: 3199},
	{Name: "Apple M4 Pro", Vendor: "Apple", VramMb: 49152, MemoryBandwidthGbps: 273, TdpWatts: 60, Architecture: "Apple Silicon", MsrpUsd: 1999},
	{Name: "Apple M4", Vendor: "Apple", VramMb: 32768, MemoryBandwidthGbps: 120, TdpWatts: 30, Architecture: "Apple Silicon", MsrpUsd: 1299},
	{Name: "Apple M3 Ultra", Vendor: "Apple", VramMb: 196608, MemoryBandwidthGbps: 800, TdpWatts: 100, Architecture: "Apple Silicon", MsrpUsd: 4999},
	{Name: "Apple M3 Max", Vendor: "Apple", VramMb: 131072, MemoryBandwidthGbps: 400, TdpWatts: 75, Architecture: "Apple Silicon", MsrpUsd: 3199, UsedPriceUsd: 2400},
	{Name: "Apple M3 Pro", Vendor: "Apple", VramMb: 36864, MemoryBandwidthGbps: 200, TdpWatts: 50, Architecture: "Apple Silicon", MsrpUsd: 1999, UsedPriceUsd: 1400},
	{Name: "Apple M3", Vendor: "Apple", VramMb: 24576, MemoryBandwidthGbps: 100, TdpWatts: 25, Architecture: "Apple Silicon", MsrpUsd: 1299},
	{Name: "Apple M2 Ultra", Vendor: "Apple", VramMb: 196608, MemoryBandwidthGbps: 800, TdpWatts: 100, Architecture: "Apple Silicon", MsrpUsd: 4999, UsedPriceUsd: 3500},
	{Name: "Apple M2 Max", Vendor: "Apple", VramMb: 98304, MemoryBandwidthGbps: 400, TdpWatts: 75, Architecture: "Apple Silicon", MsrpUsd: 3099, UsedPriceUsd: 1900},
	{Name: "Apple M2 Pro", Vendor: "Apple", VramMb: 32768, MemoryBandwidthGbps: 200, TdpWatts: 50, Architecture: "Apple Silicon", MsrpUsd: 1999, UsedPriceUsd: 1100},
	{Name: "Apple M2", Vendor: "Apple", VramMb: 24576, MemoryBandwidthGbps: 100, TdpWatts: 25, Architecture: "Apple Silicon", MsrpUsd: 1199, UsedPriceUsd: 700},
	{Name: "Apple M1 Ultra", Vendor: "Apple", VramMb: 131072, MemoryBandwidthGbps: 800, TdpWatts: 100, Architecture: "Apple Silicon", MsrpUsd: 3999, UsedPriceUsd: 2200},
	{Name: "Apple M1 Max", Vendor: "Apple", VramMb: 65536, MemoryBandwidthGbps: 400, TdpWatts: 60, Architecture: "Apple Silicon", MsrpUsd: 3099, UsedPriceUsd: 1300},
	{Name: "Apple M1 Pro", Vendor: "Apple", VramMb: 32768, MemoryBandwidthGbps: 200, TdpWatts: 40, Architecture: "Apple Silicon", MsrpUsd: 1999, UsedPriceUsd: 800},
	{Name: "Apple M1", Vendor: "Apple", VramMb: 16384, MemoryBandwidthGbps: 68, TdpWatts: 20, Architecture: "Apple Silicon", MsrpUsd: 999, UsedPriceUsd: 450},

	// Intel - Battlemage (Arc B-Series)
	{Name: "Intel Arc B580", Vendor: "Intel", VramMb: 12288, MemoryBandwidthGbps: 456, TdpWatts: 190, Architecture: "Battlemage", MsrpUsd: 249},
	{Name: "Intel Arc B570", Vendor: "Intel", VramMb: 10240, MemoryBandwidthGbps: 380, TdpWatts: 150, Architecture: "Battlemage", MsrpUsd: 219},

	// Intel - Alchemist (Arc A-Series)
	{Name: "Intel Arc A770 16GB", Vendor: "Intel", VramMb: 16384, MemoryBandwidthGbps: 560, TdpWatts: 225, Architecture: "Alchemist", MsrpUsd: 349, UsedPriceUsd: 220},
	{Name: "Intel Arc A770 8GB", Vendor: "Intel", VramMb: 8192, MemoryBandwidthGbps: 512, TdpWatts: 225, Architecture: "Alchemist", MsrpUsd: 329},
	{Name: "Intel Arc A750", Vendor: "Intel", VramMb: 8192, MemoryBandwidthGbps: 512, TdpWatts: 225, Architecture: "Alchemist", MsrpUsd: 289, UsedPriceUsd: 150},
	{Name: "Intel Arc A580", Vendor: "Intel", VramMb: 8192, MemoryBandwidthGbps: 512, TdpWatts: 185, Architecture: "Alchemist", MsrpUsd: 179},
}

// CpuList is the seed catalog of known CPUs.
var CpuList = []CpuSpec{
	// Intel - 14th Gen (Raptor Lake Refresh)
	{Name: "Intel Core i9-14900KS", Vendor: "Intel", Cores: 24, Threads: 32, BaseClockMhz: 3200, BoostClockMhz: 6200, L3CacheMb: 36, TdpWatts: 150, Architecture: "Raptor Lake", MsrpUsd: 689},
	{Name: "Intel Core i9-14900K", Vendor: "Intel", Cores: 24, Threads: 32, BaseClockMhz: 3200, BoostClockMhz: 6000, L3CacheMb: 36, TdpWatts: 125, Architecture: "Raptor Lake", MsrpUsd: 589},
	{Name: "Intel Core i9-14900KF", Vendor: "Intel", Cores: 24, Threads: 32, BaseClockMhz: 3200, BoostClockMhz: 6000, L3CacheMb: 36, TdpWatts: 125, Architecture: "Raptor Lake", MsrpUsd: 564},
	{Name: "Intel Core i7-14700K", Vendor: "Intel", Cores: 20, Threads: 28, BaseClockMhz: 3400, BoostClockMhz: 5600, L3CacheMb: 33, TdpWatts: 125, Architecture: "Raptor Lake", MsrpUsd: 409},
	{Name: "Intel Core i7-14700KF", Vendor: "Intel", Cores: 20, Threads: 28, BaseClockMhz: 3400, BoostClockMhz: 5600, L3CacheMb: 33, TdpWatts: 125, Architecture: "Raptor Lake", MsrpUsd: 384},
	{Name: "Intel Core i5-14600K", Vendor: "Intel", Cores: 14, Threads: 20, BaseClockMhz: 3500, BoostClockMhz: 5300, L3CacheMb: 24, TdpWatts: 125, Architecture: "Raptor Lake", MsrpUsd: 319},
	{Name: "Intel Core i5-14600KF", Vendor: "Intel", Cores: 14, Threads: 20, BaseClockMhz: 3500, BoostClockMhz: 5300, L3CacheMb: 24, TdpWatts: 125, Architecture: "Raptor Lake", MsrpUsd: 294},

	// Intel - 13th Gen (Raptor Lake)
	{Name: "Intel Core i9-13900KS", Vendor: "Intel", Cores: 24, Threads: 32, BaseClockMhz: 3000, BoostClockMhz: 6000, L3CacheMb: 36, TdpWatts: 150, Architecture: "Raptor Lake", MsrpUsd: 699},
	{Name: "Intel Core i9-13900K", Vendor: "Intel", Cores: 24, Threads: 32, BaseClockMhz: 3000, BoostClockMhz: 5800, L3CacheMb: 36, TdpWatts: 125, Architecture: "Raptor Lake", MsrpUsd: 589},
	{Name: "Intel Core i7-13700K", Vendor: "Intel", Cores: 16, Threads: 24, BaseClockMhz: 3400, BoostClockMhz: 5400, L3CacheMb: 30, TdpWatts: 125, Architecture: "Raptor Lake", MsrpUsd: 409},
	{Name: "Intel Core i5-13600K", Vendor: "Intel", Cores: 14, Threads: 20, BaseClockMhz: 3500, BoostClockMhz: 5100, L3CacheMb: 24, TdpWatts: 125, Architecture: "Raptor Lake", MsrpUsd: 319},

	// Intel - 12th Gen (Alder Lake)
	{Name: "Intel Core i9-12900KS", Vendor: "Intel", Cores: 16, Threads: 24, BaseClockMhz: 3400, BoostClockMhz: 5500, L3CacheMb: 30, TdpWatts: 150, Architecture: "Alder Lake", MsrpUsd: 739},
	{Name: "Intel Core i9-12900K", Vendor: "Intel", Cores: 16, Threads: 24, BaseClockMhz: 3200, BoostClockMhz: 5200, L3CacheMb: 30, TdpWatts: 125, Architecture: "Alder Lake", MsrpUsd: 589},
	{Name: "Intel Core i7-12700K", Vendor: "Intel", Cores: 12, Threads: 20, BaseClockMhz: 3600, BoostClockMhz: 5000, L3CacheMb: 25, TdpWatts: 125, Architecture: "Alder Lake", MsrpUsd: 409},
	{Name: "Intel Core i5-12600K", Vendor: "Intel", Cores: 10, Threads: 16, BaseClockMhz: 3700, BoostClockMhz: 4900, L3CacheMb: 20, TdpWatts: 125, Architecture: "Alder Lake", MsrpUsd: 289},

	// Intel - Xeon
	{Name: "Intel Xeon w9-3595X", Vendor: "Intel", Cores: 56, Threads: 112, BaseClockMhz: 2000, BoostClockMhz: 4800, L3CacheMb: 105, TdpWatts: 350, Architecture: "Sapphire Rapids", MsrpUsd: 5889},
	{Name: "Intel Xeon w9-3495X", Vendor: "Intel", Cores: 56, Threads: 112, BaseClockMhz: 1900, BoostClockMhz: 4800, L3CacheMb: 105, TdpWatts: 350, Architecture: "Sapphire Rapids", MsrpUsd: 5289},
	{Name: "Intel Xeon W-3475X", Vendor: "Intel", Cores: 36, Threads: 72, BaseClockMhz: 2200, BoostClockMhz: 4800, L3CacheMb: 52, TdpWatts: 300, Architecture: "Sapphire Rapids", MsrpUsd: 3599},
	{Name: "Intel Xeon W-3465X", Vendor: "Intel", Cores: 28, Threads: 56, BaseClockMhz: 2500, BoostClockMhz: 4800, L3CacheMb: 45, TdpWatts: 270, Architecture: "Sapphire Rapids", MsrpUsd: 2749},
	{Name: "Intel Xeon W-2495X", Vendor: "Intel", Cores: 24, Threads: 48, BaseClockMhz: 2500, BoostClockMhz: 4800, L3CacheMb: 45, TdpWatts: 225, Architecture: "Sapphire Rapids", MsrpUsd: 2149},

	// AMD - Ryzen 9000 Series
	{Name: "AMD Ryzen 9 9950X", Vendor: "AMD", Cores: 16, Threads: 32, BaseClockMhz: 4300, BoostClockMhz: 5700, L3CacheMb: 64, TdpWatts: 170, Architecture: "Zen 5", MsrpUsd: 649},
	{Name: "AMD Ryzen 9 9900X", Vendor: "AMD", Cores: 12, Threads: 24, BaseClockMhz: 4400, BoostClockMhz: 5600, L3CacheMb: 64, TdpWatts: 120, Architecture: "Zen 5", MsrpUsd: 499},
	{Name: "AMD Ryzen 7 9700X", Vendor: "AMD", Cores: 8, Threads: 16, BaseClockMhz: 3800, BoostClockMhz: 5500, L3CacheMb: 32, TdpWatts: 65, Architecture: "Zen 5", MsrpUsd: 359},
	{Name: "AMD Ryzen 5 9600X", Vendor: "AMD", Cores: 6, Threads: 12, BaseClockMhz: 3900, BoostClockMhz: 5400, L3CacheMb: 32, TdpWatts: 65, Architecture: "Zen 5", MsrpUsd: 279},

	// AMD - Ryzen 7000 Series
	{Name: "AMD Ryzen 9 7950X3D", Vendor: "AMD", Cores: 16, Threads: 32, BaseClockMhz: 4200, BoostClockMhz: 5700, L3CacheMb: 128, TdpWatts: 120, Architecture: "Zen 4", MsrpUsd: 699},
	{Name: "AMD Ryzen 9 7950X", Vendor: "AMD", Cores: 16, Threads: 32, BaseClockMhz: 4500, BoostClockMhz: 5700, L3CacheMb: 64, TdpWatts: 170, Architecture: "Zen 4", MsrpUsd: 699},
	{Name: "AMD Ryzen 9 7900X3D", Vendor: "AMD", Cores: 12, Threads: 24, BaseClockMhz: 4400, BoostClockMhz: 5600, L3CacheMb: 128, TdpWatts: 120, Architecture: "Zen 4", MsrpUsd: 599},
	{Name: "AMD Ryzen 9 7900X", Vendor: "AMD", Cores: 12, Threads: 24, BaseClockMhz: 4700, BoostClockMhz: 5600, L3CacheMb: 64, TdpWatts: 170, Architecture: "Zen 4", MsrpUsd: 549},
	{Name: "AMD Ryzen 7 7800X3D", Vendor: "AMD", Cores: 8, Threads: 16, BaseClockMhz: 4200, BoostClockMhz: 5000, L3CacheMb: 96, TdpWatts: 120, Architecture: "Zen 4", MsrpUsd: 449},
	{Name: "AMD Ryzen 7 7700X", Vendor: "AMD", Cores: 8, Threads: 16, BaseClockMhz: 4500, BoostClockMhz: 5400, L3CacheMb: 32, TdpWatts: 105, Architecture: "Zen 4", MsrpUsd: 399},
	{Name: "AMD Ryzen 5 7600X", Vendor: "AMD", Cores: 6, Threads: 12, BaseClockMhz: 4700, BoostClockMhz: 5300, L3CacheMb: 32, TdpWatts: 105, Architecture: "Zen 4", MsrpUsd: 299},

	// AMD - Ryzen 5000 Series
	{Name: "AMD Ryzen 9 5950X", Vendor: "AMD", Cores: 16, Threads: 32, BaseClockMhz: 3400, BoostClockMhz: 4900, L3CacheMb: 64, TdpWatts: 105, Architecture: "Zen 3", MsrpUsd: 799},
	{Name: "AMD Ryzen 9 5900X", Vendor: "AMD", Cores: 12, Threads: 24, BaseClockMhz: 3700, BoostClockMhz: 4800, L3CacheMb: 64, TdpWatts: 105, Architecture: "Zen 3", MsrpUsd: 549},
	{Name: "AMD Ryzen 7 5800X3D", Vendor: "AMD", Cores: 8, Threads: 16, BaseClockMhz: 3400, BoostClockMhz: 4500, L3CacheMb: 96, TdpWatts: 105, Architecture: "Zen 3", MsrpUsd: 449},
	{Name: "AMD Ryzen 7 5800X", Vendor: "AMD", Cores: 8, Threads: 16, BaseClockMhz: 3800, BoostClockMhz: 4700, L3CacheMb: 32, TdpWatts: 105, Architecture: "Zen 3", MsrpUsd: 449},
	{Name: "AMD Ryzen 5 5600X", Vendor: "AMD", Cores: 6, Threads: 12, BaseClockMhz: 3700, BoostClockMhz: 4600, L3CacheMb: 32, TdpWatts: 65, Architecture: "Zen 3", MsrpUsd: 299},

	// AMD - Threadripper
	{Name: "AMD Threadripper PRO 7995WX", Vendor: "AMD", Cores: 96, Threads: 192, BaseClockMhz: 2500, BoostClockMhz: 5100, L3CacheMb: 384, TdpWatts: 350, Architecture: "Zen 4", MsrpUsd: 9999},
	{Name: "AMD Threadripper PRO 7985WX", Vendor: "AMD", Cores: 64, Threads: 128, BaseClockMhz: 3200, BoostClockMhz: 5100, L3CacheMb: 256, TdpWatts: 350, Architecture: "Zen 4", MsrpUsd: 7099},
	{Name: "AMD Threadripper PRO 7975WX", Vendor: "AMD", Cores: 32, Threads: 64, BaseClockMhz: 4000, BoostClockMhz: 5300, L3CacheMb: 128, TdpWatts: 350, Architecture: "Zen 4", MsrpUsd: 3299},
	{Name: "AMD Threadripper PRO 7965WX", Vendor: "AMD", Cores: 24, Threads: 48, BaseClockMhz: 4200, BoostClockMhz: 5300, L3CacheMb: 128, TdpWatts: 350, Architecture: "Zen 4", MsrpUsd: 1899},
	{Name: "AMD Threadripper PRO 5995WX", Vendor: "AMD", Cores: 64, Threads: 128, BaseClockMhz: 2700, BoostClockMhz: 4500, L3CacheMb: 256, TdpWatts: 280, Architecture: "Zen 3", MsrpUsd: 6499},
	{Name: "AMD Threadripper PRO 5975WX", Vendor: "AMD", Cores: 32, Threads: 64, BaseClockMhz: 3600, BoostClockMhz: 4500, L3CacheMb: 128, TdpWatts: 280, Architecture: "Zen 3", MsrpUsd: 2899},

	// AMD - EPYC
	{Name: "AMD EPYC 9654", Vendor: "AMD", Cores: 96, Threads: 192, BaseClockMhz: 2400, BoostClockMhz: 3700, L3CacheMb: 384, TdpWatts: 360, Architecture: "Zen 4", MsrpUsd: 11805},
	{Name: "AMD EPYC 9554", Vendor: "AMD", Cores: 64, Threads: 128, BaseClockMhz: 3100, BoostClockMhz: 3750, L3CacheMb: 256, TdpWatts: 360, Architecture: "Zen 4", MsrpUsd: 4558},
	{Name: "AMD EPYC 9455P", Vendor: "AMD", Cores: 48, Threads: 96, BaseClockMhz: 2550, BoostClockMhz: 3450, L3CacheMb: 256, TdpWatts: 270, Architecture: "Zen 4", MsrpUsd: 2375},
	{Name: "AMD EPYC 9454", Vendor: "AMD", Cores: 48, Threads: 96, BaseClockMhz: 2750, BoostClockMhz: 3650, L3CacheMb: 256, TdpWatts: 290, Architecture: "Zen 4", MsrpUsd: 3411},
	{Name: "AMD EPYC 9354", Vendor: "AMD", Cores: 32, Threads: 64, BaseClockMhz: 3250, BoostClockMhz: 3800, L3CacheMb: 256, TdpWatts: 280, Architecture: "Zen 4", MsrpUsd: 2730},

	// AMD Ryzen AI Max (Strix Halo APU, same SoCs as the GPU entries)
	{Name: "AMD Ryzen AI Max+ 395", Vendor: "AMD", Cores: 16, Threads: 32, BaseClockMhz: 2500, BoostClockMhz: 5100, L3CacheMb: 64, TdpWatts: 120, Architecture: "Zen 5", MsrpUsd: 2999},
	{Name: "AMD Ryzen AI Max 390", Vendor: "AMD", Cores: 12, Threads: 24, BaseClockMhz: 2500, BoostClockMhz: 5000, L3CacheMb: 64, TdpWatts: 120, Architecture: "Zen 5", MsrpUsd: 2499},
	{Name: "AMD Ryzen AI Max 385", Vendor: "AMD", Cores: 8, Threads: 16, BaseClockMhz: 2500, BoostClockMhz: 4900, L3CacheMb: 32, TdpWatts: 100, Architecture: "Zen 5", MsrpUsd: 1999},

	// Apple Silicon
	{Name: "Apple M4 Max", Vendor: "Apple", Cores: 16, Threads: 16, BoostClockMhz: 4400, L3CacheMb: 48, TdpWatts: 75, Architecture: "Apple Silicon", MsrpUsd: 3199},
	{Name: "Apple M4 Pro", Vendor: "Apple", Cores: 14, Threads: 14, BoostClockMhz: 4400, L3CacheMb: 36, TdpWatts: 60, Architecture: "Apple Silicon", MsrpUsd: 1999},
	{Name: "Apple M4", Vendor: "Apple", Cores: 10, Threads: 10, BoostClockMhz: 4400, L3CacheMb: 16, TdpWatts: 30, Architecture: "Apple Silicon", MsrpUsd: 1299},
	{Name: "Apple M3 Ultra", Vendor: "Apple", Cores: 24, Threads: 24, BoostClockMhz: 4050, L3CacheMb: 72, TdpWatts: 100, Architecture: "Apple Silicon", MsrpUsd: 4999},
	{Name: "Apple M3 Max", Vendor: "Apple", Cores: 16, Threads: 16, BoostClockMhz: 4050, L3CacheMb: 48, TdpWatts: 75, Architecture: "Apple Silicon", MsrpUsd: 3199},
	{Name: "Apple M3 Pro", Vendor: "Apple", Cores: 12, Threads: 12, BoostClockMhz: 4050, L3CacheMb: 36, TdpWatts: 50, Architecture: "Apple Silicon", MsrpUsd: 1999},
	{Name: "Apple M3", Vendor: "Apple", Cores: 8, Threads: 8, BoostClockMhz: 4050, L3CacheMb: 16, TdpWatts: 25, Architecture: "Apple Silicon", MsrpUsd: 1299},
	{Name: "Apple M2 Ultra", Vendor: "Apple", Cores: 24, Threads: 24, BoostClockMhz: 3500, L3CacheMb: 72, TdpWatts: 100, Architecture: "Apple Silicon", MsrpUsd: 4999},
	{Name: "Apple M2 Max", Vendor: "Apple", Cores: 12, Threads: 12, BoostClockMhz: 3500, L3CacheMb: 48, TdpWatts: 75, Architecture: "Apple Silicon", MsrpUsd: 3099},
	{Name: "Apple M2 Pro", Vendor: "Apple", Cores: 12, Threads: 12, BoostClockMhz: 3500, L3CacheMb: 36, TdpWatts: 50, Architecture: "Apple Silicon", MsrpUsd: 1999},
	{Name: "Apple M2", Vendor: "Apple", Cores: 8, Threads: 8, BoostClockMhz: 3500, L3CacheMb: 16, TdpWatts: 25, Architecture: "Apple Silicon", MsrpUsd: 1199},
	{Name: "Apple M1 Ultra", Vendor: "Apple", Cores: 20, Threads: 20, BoostClockMhz: 3200, L3CacheMb: 48, TdpWatts: 100, Architecture: "Apple Silicon", MsrpUsd: 3999},
	{Name: "Apple M1 Max", Vendor: "Apple", Cores: 10, Threads: 10, BoostClockMhz: 3200, L3CacheMb: 48, TdpWatts: 60, Architecture: "Apple Silicon", MsrpUsd: 3099},
	{Name: "Apple M1 Pro", Vendor: "Apple", Cores: 10, Threads: 10, BoostClockMhz: 3200, L3CacheMb: 24, TdpWatts: 40, Architecture: "Apple Silicon", MsrpUsd: 1999},
	{Name: "Apple M1", Vendor: "Apple", Cores: 8, Threads: 8, BoostClockMhz: 3200, L3CacheMb: 16, TdpWatts: 20, Architecture: "Apple Silicon", MsrpUsd: 999},
}

// ModelList is the seed catalog of known models. Parameter counts feed the
// VRAM plausibility check when a submission omits model_parameters_b.
var ModelList = []ModelSpec{
	// OpenAI GPT-OSS
	{Name: "openai/gpt-oss-120b", DisplayName: "GPT-OSS 120B", Vendor: "OpenAI", ParametersB: 117, ContextLength: 128000},
	{Name: "openai/gpt-oss-20b", DisplayName: "GPT-OSS 20B", Vendor: "OpenAI", ParametersB: 21, ContextLength: 128000},

	// Llama 3.3
	{Name: "meta-llama/Llama-3.3-70B-Instruct", DisplayName: "Llama 3.3 70B Instruct", Vendor: "Meta", ParametersB: 70, ContextLength: 128000},

	// Llama 3.2
	{Name: "meta-llama/Llama-3.2-1B", DisplayName: "Llama 3.2 1B", Vendor: "Meta", ParametersB: 1, ContextLength: 128000},
	{Name: "meta-llama/Llama-3.2-3B", DisplayName: "Llama 3.2 3B", Vendor: "Meta", ParametersB: 3, ContextLength: 128000},
	{Name: "meta-llama/Llama-3.2-1B-Instruct", DisplayName: "Llama 3.2 1B Instruct", Vendor: "Meta", ParametersB: 1, ContextLength: 128000},
	{Name: "meta-llama/Llama-3.2-3B-Instruct", DisplayName: "Llama 3.2 3B Instruct", Vendor: "Meta", ParametersB: 3, ContextLength: 128000},
	{Name: "meta-llama/Llama-3.2-11B-Vision-Instruct", DisplayName: "Llama 3.2 11B Vision", Vendor: "Meta", ParametersB: 11, ContextLength: 128000},
	{Name: "meta-llama/Llama-3.2-90B-Vision-Instruct", DisplayName: "Llama 3.2 90B Vision", Vendor: "Meta", ParametersB: 90, ContextLength: 128000},

	// Llama 3.1
	{Name: "meta-llama/Llama-3.1-8B", DisplayName: "Llama 3.1 8B", Vendor: "Meta", ParametersB: 8, ContextLength: 128000},
	{Name: "meta-llama/Llama-3.1-8B-Instruct", DisplayName: "Llama 3.1 8B Instruct", Vendor: "Meta", ParametersB: 8, ContextLength: 128000},
	{Name: "meta-llama/Llama-3.1-70B", DisplayName: "Llama 3.1 70B", Vendor: "Meta", ParametersB: 70, ContextLength: 128000},
	{Name: "meta-llama/Llama-3.1-70B-Instruct", DisplayName: "Llama 3.1 70B Instruct", Vendor: "Meta", ParametersB: 70, ContextLength: 128000},
	{Name: "meta-llama/Llama-3.1-405B", DisplayName: "Llama 3.1 405B", Vendor: "Meta", ParametersB: 405, ContextLength: 128000},
	{Name: "meta-llama/Llama-3.1-405B-Instruct", DisplayName: "Llama 3.1 405B Instruct", Vendor: "Meta", ParametersB: 405, ContextLength: 128000},

	// DeepSeek
	{Name: "deepseek-ai/DeepSeek-V3", DisplayName: "DeepSeek V3", Vendor: "DeepSeek", ParametersB: 671, ContextLength: 128000},
	{Name: "deepseek-ai/DeepSeek-V2.5", DisplayName: "DeepSeek V2.5", Vendor: "DeepSeek", ParametersB: 236, ContextLength: 128000},
	{Name: "deepseek-ai/DeepSeek-V2", DisplayName: "DeepSeek V2", Vendor: "DeepSeek", ParametersB: 236, ContextLength: 128000},
	{Name: "deepseek-ai/deepseek-llm-67b-chat", DisplayName: "DeepSeek 67B Chat", Vendor: "DeepSeek", ParametersB: 67, ContextLength: 4096},
	{Name: "deepseek-ai/deepseek-coder-33b-instruct", DisplayName: "DeepSeek Coder 33B", Vendor: "DeepSeek", ParametersB: 33, ContextLength: 16384},
	{Name: "deepseek-ai/deepseek-coder-6.7b-instruct", DisplayName: "DeepSeek Coder 6.7B", Vendor: "DeepSeek", ParametersB: 6.7, ContextLength: 16384},

	// Qwen 2.5 (including Coder)
	{Name: "Qwen/Qwen2.5-72B-Instruct", DisplayName: "Qwen 2.5 72B Instruct", Vendor: "Alibaba", ParametersB: 72, ContextLength: 131072},
	{Name: "Qwen/Qwen2.5-32B-Instruct", DisplayName: "Qwen 2.5 32B Instruct", Vendor: "Alibaba", ParametersB: 32, ContextLength: 131072},
	{Name: "Qwen/Qwen2.5-14B-Instruct", DisplayName: "Qwen 2.5 14B Instruct", Vendor: "Alibaba", ParametersB: 14, ContextLength: 131072},
	{Name: "Qwen/Qwen2.5-7B-Instruct", DisplayName: "Qwen 2.5 7B Instruct", Vendor: "Alibaba", ParametersB: 7, ContextLength: 131072},
	{Name: "Qwen/Qwen2.5-3B-Instruct", DisplayName: "Qwen 2.5 3B Instruct", Vendor: "Alibaba", ParametersB: 3, ContextLength: 32768},
	{Name: "Qwen/Qwen2.5-1.5B-Instruct", DisplayName: "Qwen 2.5 1.5B Instruct", Vendor: "Alibaba", ParametersB: 1.5, ContextLength: 32768},
	{Name: "Qwen/Qwen2.5-0.5B-Instruct", DisplayName: "Qwen 2.5 0.5B Instruct", Vendor: "Alibaba", ParametersB: 0.5, ContextLength: 32768},
	{Name: "Qwen/Qwen2.5-Coder-32B-Instruct", DisplayName: "Qwen 2.5 Coder 32B", Vendor: "Alibaba", ParametersB: 32, ContextLength: 131072},
	{Name: "Qwen/Qwen2.5-Coder-14B-Instruct", DisplayName: "Qwen 2.5 Coder 14B", Vendor: "Alibaba", ParametersB: 14, ContextLength: 131072},
	{Name: "Qwen/Qwen2.5-Coder-7B-Instruct", DisplayName: "Qwen 2.5 Coder 7B", Vendor: "Alibaba", ParametersB: 7, ContextLength: 131072},
	{Name: "Qwen/Qwen2.5-Coder-3B-Instruct", DisplayName: "Qwen 2.5 Coder 3B", Vendor: "Alibaba", ParametersB: 3, ContextLength: 32768},
	{Name: "Qwen/Qwen2.5-Coder-1.5B-Instruct", DisplayName: "Qwen 2.5 Coder 1.5B", Vendor: "Alibaba", ParametersB: 1.5, ContextLength: 32768},
	{Name: "Qwen/QwQ-32B-Preview", DisplayName: "QwQ 32B Preview", Vendor: "Alibaba", ParametersB: 32, ContextLength: 32768},

	// Mistral
	{Name: "mistralai/Mistral-Large-Instruct-2411", DisplayName: "Mistral Large 2411", Vendor: "Mistral", ParametersB: 123, ContextLength: 128000},
	{Name: "mistralai/Mistral-Small-Instruct-2409", DisplayName: "Mistral Small 2409", Vendor: "Mistral", ParametersB: 22, ContextLength: 32768},
	{Name: "mistralai/Pixtral-12B-2409", DisplayName: "Pixtral 12B", Vendor: "Mistral", ParametersB: 12, ContextLength: 128000},
	{Name: "mistralai/Mistral-Nemo-Instruct-2407", DisplayName: "Mistral Nemo 12B", Vendor: "Mistral", ParametersB: 12, ContextLength: 128000},
	{Name: "mistralai/Codestral-22B-v0.1", DisplayName: "Codestral 22B", Vendor: "Mistral", ParametersB: 22, ContextLength: 32768},
	{Name: "mistralai/Mixtral-8x22B-Instruct-v0.1", DisplayName: "Mixtral 8x22B Instruct", Vendor: "Mistral", ParametersB: 141, ContextLength: 65536},
	{Name: "mistralai/Mixtral-8x7B-Instruct-v0.1", DisplayName: "Mixtral 8x7B Instruct", Vendor: "Mistral", ParametersB: 47, ContextLength: 32768},
	{Name: "mistralai/Mistral-7B-Instruct-v0.3", DisplayName: "Mistral 7B Instruct v0.3", Vendor: "Mistral", ParametersB: 7, ContextLength: 32768},

	// Phi
	{Name: "microsoft/phi-4", DisplayName: "Phi-4", Vendor: "Microsoft", ParametersB: 14, ContextLength: 16384},
	{Name: "microsoft/Phi-3.5-mini-instruct", DisplayName: "Phi-3.5 Mini", Vendor: "Microsoft", ParametersB: 3.8, ContextLength: 128000},
	{Name: "microsoft/Phi-3.5-MoE-instruct", DisplayName: "Phi-3.5 MoE", Vendor: "Microsoft", ParametersB: 42, ContextLength: 128000},
	{Name: "microsoft/phi-3-medium-128k-instruct", DisplayName: "Phi-3 Medium 128K", Vendor: "Microsoft", ParametersB: 14, ContextLength: 128000},
	{Name: "microsoft/phi-3-mini-128k-instruct", DisplayName: "Phi-3 Mini 128K", Vendor: "Microsoft", ParametersB: 3.8, ContextLength: 128000},

	// Gemma 2
	{Name: "google/gemma-2-27b-it", DisplayName: "Gemma 2 27B Instruct", Vendor: "Google", ParametersB: 27, ContextLength: 8192},
	{Name: "google/gemma-2-9b-it", DisplayName: "Gemma 2 9B Instruct", Vendor: "Google", ParametersB: 9, ContextLength: 8192},
	{Name: "google/gemma-2-2b-it", DisplayName: "Gemma 2 2B Instruct", Vendor: "Google", ParametersB: 2, ContextLength: 8192},

	// Cohere Command R
	{Name: "CohereForAI/c4ai-command-r-plus-08-2024", DisplayName: "Command R+ (Aug 2024)", Vendor: "Cohere", ParametersB: 104, ContextLength: 128000},
	{Name: "CohereForAI/c4ai-command-r-08-2024", DisplayName: "Command R (Aug 2024)", Vendor: "Cohere", ParametersB: 35, ContextLength: 128000},

	// SmolLM2
	{Name: "HuggingFaceTB/SmolLM2-1.7B-Instruct", DisplayName: "SmolLM2 1.7B", Vendor: "Hugging Face", ParametersB: 1.7, ContextLength: 8192},
	{Name: "HuggingFaceTB/SmolLM2-360M-Instruct", DisplayName: "SmolLM2 360M", Vendor: "Hugging Face", ParametersB: 0.36, ContextLength: 8192},
	{Name: "HuggingFaceTB/SmolLM2-135M-Instruct", DisplayName: "SmolLM2 135M", Vendor: "Hugging Face", ParametersB: 0.135, ContextLength: 8192},

	// OLMo 2
	{Name: "allenai/OLMo-2-1124-13B-Instruct", DisplayName: "OLMo 2 13B", Vendor: "AI2", ParametersB: 13, ContextLength: 4096},
	{Name: "allenai/OLMo-2-1124-7B-Instruct", DisplayName: "OLMo 2 7B", Vendor: "AI2", ParametersB: 7, ContextLength: 4096},

	// Yi
	{Name: "01-ai/Yi-1.5-34B-Chat", DisplayName: "Yi 1.5 34B Chat", Vendor: "01.AI", ParametersB: 34, ContextLength: 4096},
	{Name: "01-ai/Yi-1.5-9B-Chat", DisplayName: "Yi 1.5 9B Chat", Vendor: "01.AI", ParametersB: 9, ContextLength: 4096},
	{Name: "01-ai/Yi-1.5-6B-Chat", DisplayName: "Yi 1.5 6B Chat", Vendor: "01.AI", ParametersB: 6, ContextLength: 4096},

	// Falcon
	{Name: "tiiuae/Falcon3-10B-Instruct", DisplayName: "Falcon 3 10B", Vendor: "TII", ParametersB: 10, ContextLength: 32768},
	{Name: "tiiuae/Falcon3-7B-Instruct", DisplayName: "Falcon 3 7B", Vendor: "TII", ParametersB: 7, ContextLength: 32768},
	{Name: "tiiuae/Falcon3-3B-Instruct", DisplayName: "Falcon 3 3B", Vendor: "TII", ParametersB: 3, ContextLength: 32768},
	{Name: "tiiuae/Falcon3-1B-Instruct", DisplayName: "Falcon 3 1B", Vendor: "TII", ParametersB: 1, ContextLength: 32768},

	// StarCoder
	{Name: "bigcode/starcoder2-15b-instruct-v0.1", DisplayName: "StarCoder2 15B Instruct", Vendor: "BigCode", ParametersB: 15, ContextLength: 16384},
	{Name: "bigcode/starcoder2-7b", DisplayName: "StarCoder2 7B", Vendor: "BigCode", ParametersB: 7, ContextLength: 16384},
	{Name: "bigcode/starcoder2-3b", DisplayName: "StarCoder2 3B", Vendor: "BigCode", ParametersB: 3, ContextLength: 16384},

	// Llama 3 (legacy)
	{Name: "meta-llama/Meta-Llama-3-70B", DisplayName: "Llama 3 70B", Vendor: "Meta", ParametersB: 70, ContextLength: 8192},
	{Name: "meta-llama/Meta-Llama-3-70B-Instruct", DisplayName: "Llama 3 70B Instruct", Vendor: "Meta", ParametersB: 70, ContextLength: 8192},
	{Name: "meta-llama/Meta-Llama-3-8B", DisplayName: "Llama 3 8B", Vendor: "Meta", ParametersB: 8, ContextLength: 8192},
	{Name: "meta-llama/Meta-Llama-3-8B-Instruct", DisplayName: "Llama 3 8B Instruct", Vendor: "Meta", ParametersB: 8, ContextLength: 8192},
}
