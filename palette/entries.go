/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package palette

// Entries is the color literal table: base palette hex values and the token
// references that replace them in semantic tokens. Hex keys are lowercase.
var Entries = []Entry{
	{Hex: "#ffffff", Ref: "{colors.white}"},
	{Hex: "#000000", Ref: "{colors.black}"},

	{Hex: "#fafafa", Ref: "{colors.gray.50}"},
	{Hex: "#f4f4f5", Ref: "{colors.gray.100}"},
	{Hex: "#e4e4e7", Ref: "{colors.gray.200}"},
	{Hex: "#d4d4d8", Ref: "{colors.gray.300}"},
	{Hex: "#a1a1aa", Ref: "{colors.gray.400}"},
	{Hex: "#71717a", Ref: "{colors.gray.500}"},
	{Hex: "#52525b", Ref: "{colors.gray.600}"},
	{Hex: "#3f3f46", Ref: "{colors.gray.700}"},
	{Hex: "#27272a", Ref: "{colors.gray.800}"},
	{Hex: "#18181b", Ref: "{colors.gray.900}"},
	{Hex: "#111111", Ref: "{colors.gray.950}"},

	{Hex: "#fef2f2", Ref: "{colors.red.50}"},
	{Hex: "#fee2e2", Ref: "{colors.red.100}"},
	{Hex: "#fecaca", Ref: "{colors.red.200}"},
	{Hex: "#fca5a5", Ref: "{colors.red.300}"},
	{Hex: "#f87171", Ref: "{colors.red.400}"},
	{Hex: "#ef4444", Ref: "{colors.red.500}"},
	{Hex: "#dc2626", Ref: "{colors.red.600}"},
	{Hex: "#991919", Ref: "{colors.red.700}"},
	{Hex: "#511111", Ref: "{colors.red.800}"},
	{Hex: "#300c0c", Ref: "{colors.red.900}"},
	{Hex: "#1f0808", Ref: "{colors.red.950}"},

	{Hex: "#fff7ed", Ref: "{colors.orange.50}"},
	{Hex: "#ffedd5", Ref: "{colors.orange.100}"},
	{Hex: "#fed7aa", Ref: "{colors.orange.200}"},
	{Hex: "#fdba74", Ref: "{colors.orange.300}"},
	{Hex: "#fb923c", Ref: "{colors.orange.400}"},
	{Hex: "#f97316", Ref: "{colors.orange.500}"},
	{Hex: "#ea580c", Ref: "{colors.orange.600}"},
	{Hex: "#92310a", Ref: "{colors.orange.700}"},
	{Hex: "#6c2710", Ref: "{colors.orange.800}"},
	{Hex: "#3b1106", Ref: "{colors.orange.900}"},
	{Hex: "#220a04", Ref: "{colors.orange.950}"},

	{Hex: "#fefce8", Ref: "{colors.yellow.50}"},
	{Hex: "#fef9c3", Ref: "{colors.yellow.100}"},
	{Hex: "#fef08a", Ref: "{colors.yellow.200}"},
	{Hex: "#fde047", Ref: "{colors.yellow.300}"},
	{Hex: "#facc15", Ref: "{colors.yellow.400}"},
	{Hex: "#eab308", Ref: "{colors.yellow.500}"},
	{Hex: "#ca8a04", Ref: "{colors.yellow.600}"},
	{Hex: "#845209", Ref: "{colors.yellow.700}"},
	{Hex: "#713f12", Ref: "{colors.yellow.800}"},
	{Hex: "#422006", Ref: "{colors.yellow.900}"},
	{Hex: "#281304", Ref: "{colors.yellow.950}"},

	{Hex: "#f0fdf4", Ref: "{colors.green.50}"},
	{Hex: "#dcfce7", Ref: "{colors.green.100}"},
	{Hex: "#bbf7d0", Ref: "{colors.green.200}"},
	{Hex: "#86efac", Ref: "{colors.green.300}"},
	{Hex: "#4ade80", Ref: "{colors.green.400}"},
	{Hex: "#22c55e", Ref: "{colors.green.500}"},
	{Hex: "#16a34a", Ref: "{colors.green.600}"},
	{Hex: "#116932", Ref: "{colors.green.700}"},
	{Hex: "#124a28", Ref: "{colors.green.800}"},
	{Hex: "#042713", Ref: "{colors.green.900}"},
	{Hex: "#03190c", Ref: "{colors.green.950}"},

	{Hex: "#eff6ff", Ref: "{colors.blue.50}"},
	{Hex: "#dbeafe", Ref: "{colors.blue.100}"},
	{Hex: "#bfdbfe", Ref: "{colors.blue.200}"},
	{Hex: "#a3cfff", Ref: "{colors.blue.300}"},
	{Hex: "#60a5fa", Ref: "{colors.blue.400}"},
	{Hex: "#3b82f6", Ref: "{colors.blue.500}"},
	{Hex: "#2563eb", Ref: "{colors.blue.600}"},
	{Hex: "#173da6", Ref: "{colors.blue.700}"},
	{Hex: "#1a3478", Ref: "{colors.blue.800}"},
	{Hex: "#14204a", Ref: "{colors.blue.900}"},
	{Hex: "#0c142e", Ref: "{colors.blue.950}"},

	{Hex: "#f0fdfa", Ref: "{colors.teal.50}"},
	{Hex: "#ccfbf1", Ref: "{colors.teal.100}"},
	{Hex: "#99f6e4", Ref: "{colors.teal.200}"},
	{Hex: "#5eead4", Ref: "{colors.teal.300}"},
	{Hex: "#2dd4bf", Ref: "{colors.teal.400}"},
	{Hex: "#14b8a6", Ref: "{colors.teal.500}"},
	{Hex: "#0d9488", Ref: "{colors.teal.600}"},
	{Hex: "#0c5d56", Ref: "{colors.teal.700}"},
	{Hex: "#114240", Ref: "{colors.teal.800}"},
	{Hex: "#032726", Ref: "{colors.teal.900}"},
	{Hex: "#021716", Ref: "{colors.teal.950}"},

	{Hex: "#ecfeff", Ref: "{colors.cyan.50}"},
	{Hex: "#cffafe", Ref: "{colors.cyan.100}"},
	{Hex: "#a5f3fc", Ref: "{colors.cyan.200}"},
	{Hex: "#67e8f9", Ref: "{colors.cyan.300}"},
	{Hex: "#22d3ee", Ref: "{colors.cyan.400}"},
	{Hex: "#06b6d4", Ref: "{colors.cyan.500}"},
	{Hex: "#0891b2", Ref: "{colors.cyan.600}"},
	{Hex: "#0c5c72", Ref: "{colors.cyan.700}"},
	{Hex: "#134152", Ref: "{colors.cyan.800}"},
	{Hex: "#072a38", Ref: "{colors.cyan.900}"},
	{Hex: "#051b24", Ref: "{colors.cyan.950}"},

	{Hex: "#faf5ff", Ref: "{colors.purple.50}"},
	{Hex: "#f3e8ff", Ref: "{colors.purple.100}"},
	{Hex: "#e9d5ff", Ref: "{colors.purple.200}"},
	{Hex: "#d8b4fe", Ref: "{colors.purple.300}"},
	{Hex: "#c084fc", Ref: "{colors.purple.400}"},
	{Hex: "#a855f7", Ref: "{colors.purple.500}"},
	{Hex: "#9333ea", Ref: "{colors.purple.600}"},
	{Hex: "#641ba3", Ref: "{colors.purple.700}"},
	{Hex: "#4a1772", Ref: "{colors.purple.800}"},
	{Hex: "#2f0553", Ref: "{colors.purple.900}"},
	{Hex: "#1a032e", Ref: "{colors.purple.950}"},

	{Hex: "#fdf2f8", Ref: "{colors.pink.50}"},
	{Hex: "#fce7f3", Ref: "{colors.pink.100}"},
	{Hex: "#fbcfe8", Ref: "{colors.pink.200}"},
	{Hex: "#f9a8d4", Ref: "{colors.pink.300}"},
	{Hex: "#f472b6", Ref: "{colors.pink.400}"},
	{Hex: "#ec4899", Ref: "{colors.pink.500}"},
	{Hex: "#db2777", Ref: "{colors.pink.600}"},
	{Hex: "#a41752", Ref: "{colors.pink.700}"},
	{Hex: "#6d0e34", Ref: "{colors.pink.800}"},
	{Hex: "#45061f", Ref: "{colors.pink.900}"},
	{Hex: "#2c0514", Ref: "{colors.pink.950}"},
}
