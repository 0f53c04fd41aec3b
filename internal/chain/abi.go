package chain

// Minimal ABI fragments for the contract methods this service calls.
// They match the deployed IXayaAccounts / XayaDelegation / WCHI
// interfaces; methods not used here are omitted.

const accountsABI = `[
  {"type":"function","stateMutability":"view","name":"tokenIdForName",
   "inputs":[{"name":"ns","type":"string"},{"name":"name","type":"string"}],
   "outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","stateMutability":"view","name":"tokenIdToName",
   "inputs":[{"name":"tokenId","type":"uint256"}],
   "outputs":[{"name":"ns","type":"string"},{"name":"name","type":"string"}]},
  {"type":"function","stateMutability":"view","name":"ownerOf",
   "inputs":[{"name":"tokenId","type":"uint256"}],
   "outputs":[{"name":"","type":"address"}]},
  {"type":"function","stateMutability":"view","name":"isApprovedForAll",
   "inputs":[{"name":"owner","type":"address"},{"name":"operator","type":"address"}],
   "outputs":[{"name":"","type":"bool"}]},
  {"type":"function","stateMutability":"view","name":"getApproved",
   "inputs":[{"name":"tokenId","type":"uint256"}],
   "outputs":[{"name":"","type":"address"}]},
  {"type":"function","stateMutability":"view","name":"wchiToken",
   "inputs":[],
   "outputs":[{"name":"","type":"address"}]},
  {"type":"function","stateMutability":"nonpayable","name":"move",
   "inputs":[{"name":"ns","type":"string"},{"name":"name","type":"string"},
             {"name":"mv","type":"string"},{"name":"nonce","type":"uint256"},
             {"name":"amount","type":"uint256"},{"name":"receiver","type":"address"}],
   "outputs":[{"name":"","type":"uint256"}]}
]`

const delegationABI = `[
  {"type":"function","stateMutability":"view","name":"accounts",
   "inputs":[],
   "outputs":[{"name":"","type":"address"}]},
  {"type":"function","stateMutability":"view","name":"getDefinedKeys",
   "inputs":[{"name":"tokenId","type":"uint256"},{"name":"owner","type":"address"},
             {"name":"path","type":"string[]"}],
   "outputs":[{"name":"keys","type":"string[]"},
              {"name":"fullAccess","type":"address[]"},
              {"name":"fallbackAccess","type":"address[]"}]},
  {"type":"function","stateMutability":"view","name":"getExpiration",
   "inputs":[{"name":"tokenId","type":"uint256"},{"name":"owner","type":"address"},
             {"name":"path","type":"string[]"},{"name":"operator","type":"address"},
             {"name":"fallbackOnly","type":"bool"}],
   "outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","stateMutability":"view","name":"hasAccess",
   "inputs":[{"name":"ns","type":"string"},{"name":"name","type":"string"},
             {"name":"path","type":"string[]"},{"name":"operator","type":"address"},
             {"name":"atTime","type":"uint256"}],
   "outputs":[{"name":"","type":"bool"}]},
  {"type":"function","stateMutability":"nonpayable","name":"sendHierarchicalMove",
   "inputs":[{"name":"ns","type":"string"},{"name":"name","type":"string"},
             {"name":"path","type":"string[]"},{"name":"mv","type":"string"}],
   "outputs":[]}
]`

const wchiABI = `[
  {"type":"function","stateMutability":"view","name":"balanceOf",
   "inputs":[{"name":"owner","type":"address"}],
   "outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","stateMutability":"view","name":"allowance",
   "inputs":[{"name":"owner","type":"address"},{"name":"spender","type":"address"}],
   "outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","stateMutability":"view","name":"decimals",
   "inputs":[],
   "outputs":[{"name":"","type":"uint8"}]}
]`
